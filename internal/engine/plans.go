package engine

import (
	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/rng"
)

// chooseSkill draws among the fighter's non-basic skills that are off
// cooldown, weighted by their configured weight. With no candidate, or only
// zero-weight candidates, it returns the basic attack.
//
// The preview pick and the resolver both go through here so the stream is
// consumed identically at either call site.
func (e *Engine) chooseSkill(f *game.Fighter, s *rng.Stream) game.Skill {
	candidates := make([]game.Skill, 0, e.catalog.Len())
	weights := make([]int, 0, e.catalog.Len())
	for _, sk := range e.catalog.Skills() {
		if sk.ID == game.BasicAttackID {
			continue
		}
		if f.Cooldowns[sk.ID] == 0 {
			candidates = append(candidates, sk)
			weights = append(weights, sk.Weight)
		}
	}
	if len(candidates) == 0 {
		return e.catalog.BasicAttack()
	}
	idx := s.Weighted(weights)
	if idx < 0 {
		return e.catalog.BasicAttack()
	}
	return candidates[idx]
}

// selectSkill resolves what the attacker uses this turn. A status override
// wins; then a forced id that is off cooldown (the basic attack is always
// honored); otherwise a weighted draw.
func (rc *roundContext) selectSkill(attacker *game.Fighter, forced string) game.Skill {
	selected := forced
	for i := range attacker.Statuses {
		st := &attacker.Statuses[i]
		if id, ok := handlerFor(st.Name).onBeforeAction(attacker, st); ok {
			selected = id
			rc.add(game.Event{Type: game.EventForcedBasicAttack, Actor: attacker.Role, Reason: st.Name})
			break
		}
	}

	if selected != "" {
		if sk, ok := rc.e.catalog.Get(selected); ok && attacker.Cooldowns[selected] == 0 {
			return sk
		}
		if selected == game.BasicAttackID {
			return rc.e.catalog.BasicAttack()
		}
	}
	return rc.e.chooseSkill(attacker, rc.rng)
}
