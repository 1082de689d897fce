package engine

import "github.com/ericogr/duel-arena/internal/game"

// SkillForNumber maps a user-facing ordinal to its catalog skill.
func (e *Engine) SkillForNumber(n int) (game.Skill, error) {
	id, err := e.catalog.ID(n)
	if err != nil {
		return game.Skill{}, err
	}
	return e.catalog.MustGet(id), nil
}

// FighterFor returns the fighter slot a bound participant controls: the first
// bound identity plays the player role, anyone else the AI role.
func FighterFor(b *game.Battle, actorID int64) *game.Fighter {
	if b.PlayerA != nil && *b.PlayerA == actorID {
		return &b.Player
	}
	return &b.AI
}

// SilencedNextTurn reports whether a status already on f still forces the
// basic attack once the next turn start has ticked it.
func SilencedNextTurn(f *game.Fighter) bool {
	for _, st := range f.Statuses {
		if st.Duration <= 1 {
			continue
		}
		if _, ok := handlerFor(st.Name).onBeforeAction(f, &st); ok {
			return true
		}
	}
	return false
}
