package render

import (
	"strings"
	"testing"

	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/skills"
	"golang.org/x/text/language"
)

func testBattle() *game.Battle {
	b := &game.Battle{
		Round:   2,
		Player:  game.NewFighter("Player", game.RolePlayer, []string{game.BasicAttackID, "heavy_strike"}),
		AI:      game.NewFighter("AI", game.RoleAI, []string{game.BasicAttackID, "heavy_strike"}),
		Pending: map[int64]int{},
	}
	b.Player.HP = 900
	b.AI.HP = 500
	return b
}

func TestMatch(t *testing.T) {
	cases := map[string]language.Tag{
		"":        language.English,
		"en-US":   language.English,
		"zh":      language.SimplifiedChinese,
		"zh-Hans": language.SimplifiedChinese,
		"klingon": language.English,
	}
	for in, want := range cases {
		if got := Match(in); got != want {
			t.Fatalf("Match(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestReport_RoundLines(t *testing.T) {
	b := testBattle()
	b.AI.Shield = 20
	b.AI.ApplyStatus(game.StatusPoison, 2, 45)
	log := &game.Log{Round: 2}
	log.Add(game.Event{Type: game.EventRoundStart, Round: 2})
	log.Add(game.Event{Type: game.EventForcedBasicAttack, Actor: game.RolePlayer, Reason: game.StatusSilence})
	log.Add(game.Event{Type: game.EventSkillUse, Actor: game.RolePlayer, SkillName: "Basic Attack"})
	log.Add(game.Event{Type: game.EventDamage, Actor: game.RolePlayer, Target: game.RoleAI, Amount: 80, HPLoss: 50, Absorbed: 30})
	log.Add(game.Event{Type: game.EventDOT, Actor: game.RoleAI, Amount: 45, HPLoss: 45})

	out := New("en").Report(b, log)

	for _, want := range []string{
		"=== Round 2 ===",
		"Your turn is silenced; only [Basic Attack] is available.",
		"You used [Basic Attack].",
		"Dealt 80 damage (30 absorbed by shield), the opponent lost 50 HP.",
		"-- End-of-round DOT --",
		"AI took 45 poison damage, losing 45 HP.",
		"Your HP: 900/",
		"Opponent HP: 500/",
		"(shield 20, poisoned 2 rounds)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Battle over") {
		t.Fatalf("ongoing battle must not render an outcome:\n%s", out)
	}
}

func TestReport_NoDotAndOutcome(t *testing.T) {
	b := testBattle()
	b.IsOver = true
	b.Winner = game.OutcomeDraw
	seed := int64(42)
	b.Seed = &seed
	b.DebugMode = true
	log := &game.Log{Round: 2}
	log.Add(game.Event{Type: game.EventRoundStart, Round: 2})
	log.Add(game.Event{Type: game.EventBattleOver, Winner: game.OutcomeDraw})

	out := New("en").Report(b, log)

	for _, want := range []string{"Nobody is poisoned this round.", "it's a draw", "[debug] seed=42"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestReport_AlreadyOver(t *testing.T) {
	b := testBattle()
	log := &game.Log{Round: 2}
	log.Add(game.Event{Type: game.EventAlreadyOver})

	out := New("en").Report(b, log)

	if !strings.HasPrefix(out, "This battle is over") || strings.Contains(out, "=== Round") {
		t.Fatalf("unexpected already-over report:\n%s", out)
	}
}

func TestReport_Chinese(t *testing.T) {
	b := testBattle()
	log := &game.Log{Round: 3}
	log.Add(game.Event{Type: game.EventMiss, Actor: game.RoleAI, Target: game.RolePlayer})

	out := New("zh").Report(b, log)

	for _, want := range []string{"=== 第 3 回合 ===", "技能未命中。", "本回合无人中毒。", "你的狗命剩余：900/"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestStatus_ListsParticipantsAndCooldowns(t *testing.T) {
	c, err := skills.Parse([]byte(`
basic_attack: {name: Basic Attack, type: damage, cd: 0, damage_min: 1, damage_max: 2}
heavy_strike: {name: Heavy Strike, type: damage, cd: 2, weight: 1, damage_min: 1, damage_max: 2}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b := testBattle()
	a := int64(77)
	b.PlayerA = &a
	b.Pending[a] = 2
	b.Player.Cooldowns["heavy_strike"] = 1

	out := New("en").Status(b, c)

	for _, want := range []string{"Current round: 2", "Player A: 77", "Player B: not joined", "Submitted this round:", "- 77: 2", "- Heavy Strike: 1", "- Heavy Strike: 0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "- Basic Attack") {
		t.Fatalf("basic attack must not be listed with cooldowns:\n%s", out)
	}
}

func TestText_TranslatesRejections(t *testing.T) {
	if got := New("en").Text(constants.MsgRoomFull); got != constants.MsgRoomFull {
		t.Fatalf("english rejection changed: %q", got)
	}
	if got := New("zh-Hans").Text(constants.MsgAlreadyActed); got != "你本回合已出招，等对方" {
		t.Fatalf("unexpected zh rejection %q", got)
	}
}

func TestAck(t *testing.T) {
	got := New("en").Ack("@alice", 3, "Poison Sting", false)
	if !strings.HasSuffix(got, "This round @alice will use #3 Poison Sting") {
		t.Fatalf("unexpected ack %q", got)
	}
}

func TestAck_Silenced(t *testing.T) {
	got := New("en").Ack("@alice", 3, "Poison Sting", true)
	if !strings.HasSuffix(got, "@alice is silenced; [Basic Attack] will be used instead.") {
		t.Fatalf("silenced ack must say the basic attack is used, got %q", got)
	}
	zh := New("zh").Ack("@alice", 3, "Poison Sting", true)
	if !strings.Contains(zh, "沉默") {
		t.Fatalf("unexpected zh ack %q", zh)
	}
}
