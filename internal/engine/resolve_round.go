package engine

import "github.com/ericogr/duel-arena/internal/game"

// checkWinner marks the battle terminal once either fighter is down. Both down
// at the same check is a draw. It reports whether the battle ended.
func (rc *roundContext) checkWinner() bool {
	playerDown := rc.b.Player.Down()
	aiDown := rc.b.AI.Down()
	if !playerDown && !aiDown {
		return false
	}
	rc.b.IsOver = true
	switch {
	case playerDown && aiDown:
		rc.b.Winner = game.OutcomeDraw
	case aiDown:
		rc.b.Winner = game.OutcomePlayer
	default:
		rc.b.Winner = game.OutcomeAI
	}
	rc.add(game.Event{Type: game.EventBattleOver, Winner: rc.b.Winner})
	return true
}
