package engine

import (
	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/rng"
)

// --- Round context and helpers ----------------------------------------
type roundContext struct {
	e   *Engine
	b   *game.Battle
	rng *rng.Stream
	log *game.Log
}

func (e *Engine) newRoundContext(b *game.Battle, s *rng.Stream) *roundContext {
	return &roundContext{e: e, b: b, rng: s, log: &game.Log{Round: b.Round, Events: make([]game.Event, 0, 16)}}
}

func (rc *roundContext) add(ev game.Event) { rc.log.Add(ev) }

// release captures the stream back into the battle document.
func (rc *roundContext) release() { rc.b.RNGState = rc.rng.Capture() }
