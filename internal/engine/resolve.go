package engine

import (
	"github.com/ericogr/duel-arena/internal/game"
)

// AdvanceRound resolves one full round: turn-start ticks, the player's action,
// the AI-side action, end-of-round damage over time, with a win check after
// each phase that can change hit points. Empty forced ids mean "draw one".
//
// A terminal battle is left untouched and the log carries only an
// already-over marker.
func (e *Engine) AdvanceRound(b *game.Battle, forcedPlayer, forcedAI string) (*game.Log, error) {
	if b.IsOver {
		log := &game.Log{Round: b.Round}
		log.Add(game.Event{Type: game.EventAlreadyOver})
		return log, nil
	}

	s, err := e.acquire(b)
	if err != nil {
		return nil, err
	}
	b.Round++
	rc := e.newRoundContext(b, s)
	defer rc.release()

	rc.add(game.Event{Type: game.EventRoundStart, Round: b.Round})

	rc.turnStart(&b.Player)
	rc.turnStart(&b.AI)

	rc.takeAction(&b.Player, &b.AI, forcedPlayer)
	if rc.checkWinner() {
		return rc.log, nil
	}
	rc.takeAction(&b.AI, &b.Player, forcedAI)
	if rc.checkWinner() {
		return rc.log, nil
	}

	rc.turnEndDOT(&b.Player)
	rc.turnEndDOT(&b.AI)
	rc.checkWinner()
	return rc.log, nil
}

// turnStart decrements cooldowns (floored at zero) and ticks statuses in
// attachment order. A status survives only while its duration stays positive
// and its hook does not veto it.
func (rc *roundContext) turnStart(f *game.Fighter) {
	for id, cd := range f.Cooldowns {
		if cd > 0 {
			f.Cooldowns[id] = cd - 1
		}
	}

	kept := make([]game.StatusEffect, 0, len(f.Statuses))
	for _, st := range f.Statuses {
		st.Duration--
		keep := handlerFor(st.Name).onTurnStart(rc, f, &st)
		if keep && st.Duration > 0 {
			kept = append(kept, st)
		}
	}
	f.Statuses = kept
}

func (rc *roundContext) takeAction(attacker, defender *game.Fighter, forced string) {
	sk := rc.selectSkill(attacker, forced)
	rc.add(game.Event{Type: game.EventSkillUse, Actor: attacker.Role, SkillID: sk.ID, SkillName: sk.Name})
	rc.executeSkill(attacker, defender, sk)
	if sk.Cooldown > 0 && sk.ID != game.BasicAttackID {
		attacker.Cooldowns[sk.ID] = sk.Cooldown
	}
}

// turnEndDOT sums every status's end-of-round contribution and applies it
// through the same shield path as direct damage.
func (rc *roundContext) turnEndDOT(f *game.Fighter) {
	total := 0
	for i := range f.Statuses {
		st := &f.Statuses[i]
		total += handlerFor(st.Name).onTurnEnd(f, st)
	}
	if total <= 0 {
		return
	}
	hpLoss, absorbed := applyDamage(f, total)
	rc.add(game.Event{Type: game.EventDOT, Actor: f.Role, Amount: total, HPLoss: hpLoss, Absorbed: absorbed})
}
