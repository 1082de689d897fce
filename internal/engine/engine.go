// Package engine resolves duel rounds: skill selection, status effects,
// damage and shield math, cooldowns and win detection.
package engine

import (
	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/rng"
	"github.com/ericogr/duel-arena/internal/skills"
)

// Default fighter display names. Renderers localize by role, not by name.
const (
	PlayerName = "Player"
	AIName     = "AI"
)

// Engine is stateless apart from the immutable catalog and safe to share.
type Engine struct {
	catalog *skills.Catalog
}

func New(catalog *skills.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the skill catalog the engine resolves against.
func (e *Engine) Catalog() *skills.Catalog { return e.catalog }

// NewBattle creates a fresh battle for a room. A nil seed draws one from the
// system source; either way the initial stream state is captured immediately.
func (e *Engine) NewBattle(roomID int64, seed *int64) (*game.Battle, error) {
	ids := e.catalog.IDs()
	b := &game.Battle{
		RoomID:  roomID,
		Player:  game.NewFighter(PlayerName, game.RolePlayer, ids),
		AI:      game.NewFighter(AIName, game.RoleAI, ids),
		Pending: map[int64]int{},
	}
	if seed != nil {
		v := *seed
		b.Seed = &v
	}
	s, err := rng.ForSeed(b.Seed)
	if err != nil {
		return nil, err
	}
	b.RNGState = s.Capture()
	return b, nil
}

// SetSeed re-seeds the battle and discards the previous stream.
func (e *Engine) SetSeed(b *game.Battle, seed int64) {
	b.Seed = &seed
	b.RNGState = rng.New(seed).Capture()
}

// PickLockedSkillNumber previews the weighted draw for f and returns the
// ordinal of the chosen skill, consuming and re-capturing the battle stream.
func (e *Engine) PickLockedSkillNumber(b *game.Battle, f *game.Fighter) (int, error) {
	s, err := e.acquire(b)
	if err != nil {
		return 0, err
	}
	sk := e.chooseSkill(f, s)
	b.RNGState = s.Capture()
	return e.catalog.Number(sk.ID)
}

// acquire restores the stream from the battle token, or seeds it and
// captures the fresh state when there is none yet.
func (e *Engine) acquire(b *game.Battle) (*rng.Stream, error) {
	if b.RNGState != "" {
		return rng.Restore(b.RNGState)
	}
	s, err := rng.ForSeed(b.Seed)
	if err != nil {
		return nil, err
	}
	b.RNGState = s.Capture()
	return s, nil
}
