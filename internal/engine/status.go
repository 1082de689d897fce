package engine

import "github.com/ericogr/duel-arena/internal/game"

// statusHandler is the hook set every status variant exposes. baseHandler
// supplies pass-through defaults so variants only override what they use.
type statusHandler interface {
	// onTurnStart runs after the duration was decremented; false drops the status.
	onTurnStart(rc *roundContext, f *game.Fighter, s *game.StatusEffect) bool
	// onBeforeAction may force a skill id for this turn.
	onBeforeAction(f *game.Fighter, s *game.StatusEffect) (string, bool)
	// onDamageTaken returns the damage left after this status is applied.
	onDamageTaken(f *game.Fighter, incoming int, s *game.StatusEffect) int
	// onTurnEnd returns damage-over-time contributed at round end.
	onTurnEnd(f *game.Fighter, s *game.StatusEffect) int
}

type baseHandler struct{}

func (baseHandler) onTurnStart(*roundContext, *game.Fighter, *game.StatusEffect) bool { return true }
func (baseHandler) onBeforeAction(*game.Fighter, *game.StatusEffect) (string, bool)   { return "", false }
func (baseHandler) onDamageTaken(_ *game.Fighter, incoming int, _ *game.StatusEffect) int {
	return incoming
}
func (baseHandler) onTurnEnd(*game.Fighter, *game.StatusEffect) int { return 0 }

type poisonHandler struct{ baseHandler }

func (poisonHandler) onTurnEnd(_ *game.Fighter, s *game.StatusEffect) int { return s.Value }

type silenceHandler struct{ baseHandler }

func (silenceHandler) onBeforeAction(*game.Fighter, *game.StatusEffect) (string, bool) {
	return game.BasicAttackID, true
}

type shieldHandler struct{ baseHandler }

func (shieldHandler) onTurnStart(rc *roundContext, f *game.Fighter, s *game.StatusEffect) bool {
	if s.Duration > 0 {
		return true
	}
	if f.Shield > 0 {
		f.Shield = 0
		rc.add(game.Event{Type: game.EventShieldExpire, Actor: f.Role})
	}
	return false
}

func (shieldHandler) onDamageTaken(f *game.Fighter, incoming int, _ *game.StatusEffect) int {
	absorbed := min(f.Shield, incoming)
	if absorbed < 0 {
		absorbed = 0
	}
	f.Shield -= absorbed
	return incoming - absorbed
}

// handlerFor dispatches over the closed set of status variants. Unknown names
// get the no-op defaults.
func handlerFor(name string) statusHandler {
	switch name {
	case game.StatusPoison:
		return poisonHandler{}
	case game.StatusSilence:
		return silenceHandler{}
	case game.StatusShield:
		return shieldHandler{}
	default:
		return baseHandler{}
	}
}
