package engine

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/skills"
)

// Fixed damage ranges keep hit point assertions exact.
const testTable = `
basic_attack:
  name: Basic Attack
  type: damage
  cd: 0
  damage_min: 10
  damage_max: 10
heavy_strike:
  name: Heavy Strike
  type: damage
  cd: 2
  weight: 30
  damage_min: 50
  damage_max: 50
poison_sting:
  name: Poison Sting
  type: apply_status
  cd: 3
  weight: 20
  status: poison
  duration: 3
  value: 45
  chance: 1
silence_seal:
  name: Silence Seal
  type: apply_status
  cd: 4
  weight: 15
  status: silence
  duration: 2
  chance: 0
iron_guard:
  name: Iron Guard
  type: add_shield
  cd: 3
  weight: 20
  duration: 2
  shield_value: 150
secret_move:
  name: Secret Move
  type: damage
  cd: 0
  weight: 0
  damage_min: 7
  damage_max: 7
`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	c, err := skills.Parse([]byte(testTable))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	return New(c)
}

func newTestBattle(t *testing.T, e *Engine, seed int64) *game.Battle {
	t.Helper()
	b, err := e.NewBattle(1, &seed)
	if err != nil {
		t.Fatalf("new battle: %v", err)
	}
	return b
}

func advance(t *testing.T, e *Engine, b *game.Battle, forcedPlayer, forcedAI string) *game.Log {
	t.Helper()
	log, err := e.AdvanceRound(b, forcedPlayer, forcedAI)
	if err != nil {
		t.Fatalf("advance round: %v", err)
	}
	return log
}

func skillUses(log *game.Log, role game.Role) []game.Event {
	var out []game.Event
	for _, ev := range log.Filter(game.EventSkillUse) {
		if ev.Actor == role {
			out = append(out, ev)
		}
	}
	return out
}

func TestAdvanceRound_SilenceForcesBasicAttack(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 42)
	b.Player.ApplyStatus(game.StatusSilence, 2, 0)

	log := advance(t, e, b, "heavy_strike", "")

	forced := log.Filter(game.EventForcedBasicAttack)
	if len(forced) != 1 || forced[0].Actor != game.RolePlayer || forced[0].Reason != game.StatusSilence {
		t.Fatalf("expected one forced basic attack for the player, got %+v", forced)
	}
	uses := skillUses(log, game.RolePlayer)
	if len(uses) != 1 || uses[0].SkillID != game.BasicAttackID {
		t.Fatalf("expected player to use basic attack, got %+v", uses)
	}
	if b.Player.Cooldowns["heavy_strike"] != 0 {
		t.Fatalf("silenced heavy strike must not start its cooldown")
	}
}

func TestApplyDamage_ShieldAbsorbsFirst(t *testing.T) {
	f := game.NewFighter("P", game.RolePlayer, nil)
	f.Shield = 100
	f.ApplyStatus(game.StatusShield, 2, 0)

	hpLoss, absorbed := applyDamage(&f, 130)

	if absorbed != 100 || hpLoss != 30 {
		t.Fatalf("expected absorbed=100 hpLoss=30, got absorbed=%d hpLoss=%d", absorbed, hpLoss)
	}
	if f.Shield != 0 || f.HP != game.DefaultMaxHP-30 {
		t.Fatalf("expected shield=0 hp=%d, got shield=%d hp=%d", game.DefaultMaxHP-30, f.Shield, f.HP)
	}
}

func TestApplyDamage_ClampsAtZero(t *testing.T) {
	f := game.NewFighter("P", game.RolePlayer, nil)
	f.HP = 20
	hpLoss, absorbed := applyDamage(&f, 50)
	if f.HP != 0 || hpLoss != 50 || absorbed != 0 {
		t.Fatalf("expected hp=0 hpLoss=50 absorbed=0, got hp=%d hpLoss=%d absorbed=%d", f.HP, hpLoss, absorbed)
	}
}

func TestAdvanceRound_PoisonTicksAtRoundEnd(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 1)
	b.AI.ApplyStatus(game.StatusPoison, 2, 45)

	log := advance(t, e, b, game.BasicAttackID, game.BasicAttackID)

	dots := log.Filter(game.EventDOT)
	if len(dots) != 1 || dots[0].Actor != game.RoleAI || dots[0].Amount != 45 || dots[0].HPLoss != 45 {
		t.Fatalf("expected one 45 dot on the AI, got %+v", dots)
	}
	lastUse, dotAt := -1, -1
	for i, ev := range log.Events {
		switch ev.Type {
		case game.EventSkillUse:
			lastUse = i
		case game.EventDOT:
			dotAt = i
		}
	}
	if dotAt < lastUse {
		t.Fatalf("dot must come after both actions (dot=%d lastUse=%d)", dotAt, lastUse)
	}
	if b.AI.HP != game.DefaultMaxHP-10-45 {
		t.Fatalf("expected AI hp %d, got %d", game.DefaultMaxHP-55, b.AI.HP)
	}
}

func TestAdvanceRound_CooldownLifecycle(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 3)

	advance(t, e, b, "heavy_strike", game.BasicAttackID)
	if got := b.Player.Cooldowns["heavy_strike"]; got != 2 {
		t.Fatalf("expected heavy_strike cd=2 after use, got %d", got)
	}
	if got := b.Player.Cooldowns[game.BasicAttackID]; got != 0 {
		t.Fatalf("basic attack cd must stay 0, got %d", got)
	}

	b.Player.ApplyStatus(game.StatusSilence, 5, 0)
	advance(t, e, b, "", game.BasicAttackID)
	if got := b.Player.Cooldowns["heavy_strike"]; got != 1 {
		t.Fatalf("expected heavy_strike cd=1 after one turn start, got %d", got)
	}
	advance(t, e, b, "", game.BasicAttackID)
	advance(t, e, b, "", game.BasicAttackID)
	if got := b.Player.Cooldowns["heavy_strike"]; got != 0 {
		t.Fatalf("cooldown must floor at 0, got %d", got)
	}
}

func TestAdvanceRound_ForcedSkillOnCooldownFallsBackToDraw(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 9)
	b.Player.Cooldowns["heavy_strike"] = 3

	log := advance(t, e, b, "heavy_strike", game.BasicAttackID)

	uses := skillUses(log, game.RolePlayer)
	if len(uses) != 1 || uses[0].SkillID == "heavy_strike" {
		t.Fatalf("heavy strike on cooldown must not be used, got %+v", uses)
	}
}

func TestAdvanceRound_ZeroWeightForceableNotDrawable(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 11)

	log := advance(t, e, b, "secret_move", game.BasicAttackID)
	if uses := skillUses(log, game.RolePlayer); uses[0].SkillID != "secret_move" {
		t.Fatalf("expected forced secret_move, got %s", uses[0].SkillID)
	}

	f := game.NewFighter("P", game.RolePlayer, e.Catalog().IDs())
	s, err := e.acquire(b)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	for i := 0; i < 300; i++ {
		if sk := e.chooseSkill(&f, s); sk.ID == "secret_move" || sk.ID == game.BasicAttackID {
			t.Fatalf("weighted draw returned %s", sk.ID)
		}
	}
}

func TestChooseSkill_AllOnCooldownFallsBackToBasic(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 5)
	for id := range b.Player.Cooldowns {
		if id != game.BasicAttackID {
			b.Player.Cooldowns[id] = 2
		}
	}
	s, err := e.acquire(b)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if sk := e.chooseSkill(&b.Player, s); sk.ID != game.BasicAttackID {
		t.Fatalf("expected basic attack, got %s", sk.ID)
	}
}

func TestAdvanceRound_ShieldGainAndExpiry(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 21)

	log := advance(t, e, b, "iron_guard", game.BasicAttackID)
	gains := log.Filter(game.EventShieldGain)
	if len(gains) != 1 || gains[0].Value != 150 || gains[0].Duration != 2 {
		t.Fatalf("expected one shield gain of 150 for 2 rounds, got %+v", gains)
	}
	if b.Player.Shield != 140 {
		t.Fatalf("expected 150 shield minus 10 absorbed, got %d", b.Player.Shield)
	}
	if b.Player.HP != game.DefaultMaxHP {
		t.Fatalf("shield should have absorbed the AI hit, hp=%d", b.Player.HP)
	}

	advance(t, e, b, game.BasicAttackID, game.BasicAttackID)
	log = advance(t, e, b, game.BasicAttackID, game.BasicAttackID)
	if !log.Has(game.EventShieldExpire) {
		t.Fatalf("expected shield to expire on the second turn start after gaining it")
	}
	if _, ok := b.Player.Status(game.StatusShield); ok {
		t.Fatalf("expired shield status must be removed")
	}
	if b.Player.Shield != 0 {
		t.Fatalf("expected shield 0 after expiry, got %d", b.Player.Shield)
	}
}

func TestAdvanceRound_StatusMissAndApply(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 8)

	log := advance(t, e, b, "poison_sting", "silence_seal")

	applied := log.Filter(game.EventStatusApply)
	if len(applied) != 1 || applied[0].Target != game.RoleAI || applied[0].Status != game.StatusPoison {
		t.Fatalf("expected poison applied to AI, got %+v", applied)
	}
	if misses := log.Filter(game.EventMiss); len(misses) != 1 || misses[0].Actor != game.RoleAI {
		t.Fatalf("expected the zero-chance silence to miss, got %+v", misses)
	}
	if dots := log.Filter(game.EventDOT); len(dots) != 1 || dots[0].Amount != 45 {
		t.Fatalf("freshly applied poison ticks at end of the same round, got %+v", dots)
	}
}

func TestAdvanceRound_ReapplyReplacesStatus(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 8)
	b.AI.ApplyStatus(game.StatusPoison, 1, 5)
	b.AI.ApplyStatus(game.StatusSilence, 4, 0)

	advance(t, e, b, "poison_sting", game.BasicAttackID)

	if len(b.AI.Statuses) != 2 {
		t.Fatalf("expected poison and silence, got %+v", b.AI.Statuses)
	}
	p, _ := b.AI.Status(game.StatusPoison)
	if p.Duration != 3 || p.Value != 45 {
		t.Fatalf("re-application must replace duration and value, got %+v", p)
	}
}

func TestAdvanceRound_OneSideDownStopsRound(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 4)
	b.AI.HP = 5
	b.Player.ApplyStatus(game.StatusPoison, 3, 999)

	log := advance(t, e, b, game.BasicAttackID, game.BasicAttackID)

	if !b.IsOver || b.Winner != game.OutcomePlayer {
		t.Fatalf("expected player win, got over=%v winner=%q", b.IsOver, b.Winner)
	}
	if len(skillUses(log, game.RoleAI)) != 0 {
		t.Fatalf("AI must not act after being knocked out")
	}
	if log.Has(game.EventDOT) {
		t.Fatalf("no dot phase after a knockout in the action phase")
	}
	over := log.Filter(game.EventBattleOver)
	if len(over) != 1 || over[0].Winner != game.OutcomePlayer {
		t.Fatalf("expected battle_over with player winner, got %+v", over)
	}
}

func TestAdvanceRound_SimultaneousKnockoutIsDraw(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 4)
	b.Player.HP = 40
	b.AI.HP = 40
	b.Player.ApplyStatus(game.StatusPoison, 3, 100)
	b.AI.ApplyStatus(game.StatusPoison, 3, 100)

	advance(t, e, b, game.BasicAttackID, game.BasicAttackID)

	if !b.IsOver || b.Winner != game.OutcomeDraw {
		t.Fatalf("expected draw, got over=%v winner=%q", b.IsOver, b.Winner)
	}
}

func TestAdvanceRound_AlreadyOverIsNoop(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 4)
	b.IsOver = true
	b.Winner = game.OutcomeAI
	before := b.Clone()

	log := advance(t, e, b, "heavy_strike", "heavy_strike")

	if len(log.Events) != 1 || log.Events[0].Type != game.EventAlreadyOver {
		t.Fatalf("expected only already_over, got %+v", log.Events)
	}
	if !reflect.DeepEqual(before, b) {
		t.Fatalf("terminal battle must not change")
	}
}

func TestAdvanceRound_RoundCounterAdvancesByOne(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 12)
	for want := 1; want <= 3; want++ {
		log := advance(t, e, b, game.BasicAttackID, game.BasicAttackID)
		if b.Round != want || log.Round != want {
			t.Fatalf("expected round %d, battle=%d log=%d", want, b.Round, log.Round)
		}
		if ev := log.Events[0]; ev.Type != game.EventRoundStart || ev.Round != want {
			t.Fatalf("first event must be round_start %d, got %+v", want, ev)
		}
	}
}

func roundTrip(t *testing.T, b *game.Battle) *game.Battle {
	t.Helper()
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out game.Battle
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &out
}

func TestAdvanceRound_PersistenceRoundTripIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	live := newTestBattle(t, e, 2024)
	persisted := roundTrip(t, live)

	for i := 0; i < 6 && !live.IsOver; i++ {
		n1, err := e.PickLockedSkillNumber(live, &live.Player)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		persisted = roundTrip(t, persisted)
		n2, err := e.PickLockedSkillNumber(persisted, &persisted.Player)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if n1 != n2 {
			t.Fatalf("round %d: preview diverged %d vs %d", i+1, n1, n2)
		}

		want := advance(t, e, live, "", "")
		persisted = roundTrip(t, persisted)
		got := advance(t, e, persisted, "", "")
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("round %d diverged after persistence:\nlive=%+v\nresumed=%+v", i+1, want.Events, got.Events)
		}
	}
	if !reflect.DeepEqual(roundTrip(t, live), roundTrip(t, persisted)) {
		t.Fatalf("battle documents diverged")
	}
}

func TestSetSeed_RestartsStream(t *testing.T) {
	e := newTestEngine(t)
	a := newTestBattle(t, e, 1)
	b := newTestBattle(t, e, 2)
	advance(t, e, a, "", "")

	e.SetSeed(a, 77)
	e.SetSeed(b, 77)
	if a.RNGState != b.RNGState || *a.Seed != 77 {
		t.Fatalf("SetSeed must discard prior stream state")
	}
}

func TestAcquire_SeedsWhenTokenMissing(t *testing.T) {
	e := newTestEngine(t)
	b := newTestBattle(t, e, 5)
	want := b.RNGState
	b.RNGState = ""
	if _, err := e.acquire(b); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if b.RNGState != want {
		t.Fatalf("re-seeding from the same seed must capture the same initial state")
	}
}
