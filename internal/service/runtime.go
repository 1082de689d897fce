package service

import (
	"context"
	"errors"

	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/engine"
	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/hub"
	"github.com/ericogr/duel-arena/internal/logging"
	"github.com/ericogr/duel-arena/internal/storage"
)

// Renderer formats a resolved round for the room feed.
type Renderer interface {
	Report(b *game.Battle, log *game.Log) string
}

// Publisher receives resolved rounds in order, under the room lock, so it must
// never block.
type Publisher interface {
	Publish(r hub.Report)
}

// SubmitOutcome is a synchronizer result plus the battle as persisted.
type SubmitOutcome struct {
	SubmitResult
	Battle *game.Battle
}

// Runtime wires the engine, synchronizer and storage behind per-room locks.
// Every operation holds the room lock for its whole load, mutate, save cycle.
type Runtime struct {
	engine    *engine.Engine
	duel      *Duel
	repo      storage.Repository
	renderer  Renderer
	publisher Publisher
	locks     RoomLocks
}

// NewRuntime builds the runtime. renderer and publisher may be nil when no
// room feed is served.
func NewRuntime(e *engine.Engine, repo storage.Repository, renderer Renderer, publisher Publisher) *Runtime {
	return &Runtime{
		engine:    e,
		duel:      NewDuel(e),
		repo:      repo,
		renderer:  renderer,
		publisher: publisher,
	}
}

func (rt *Runtime) Engine() *engine.Engine { return rt.engine }

// Start creates a fresh battle for the room, replacing any existing one.
func (rt *Runtime) Start(ctx context.Context, roomID int64) (*game.Battle, error) {
	unlock := rt.locks.Lock(roomID)
	defer unlock()

	b, err := rt.engine.NewBattle(roomID, nil)
	if err != nil {
		return nil, err
	}
	if err := rt.repo.Save(ctx, roomID, b); err != nil {
		return nil, err
	}
	logging.Info("battle started", logging.Fields{constants.LogFieldRoomID: roomID})
	return b, nil
}

// Reset creates a fresh battle that keeps the previous seed and debug flag.
func (rt *Runtime) Reset(ctx context.Context, roomID int64) (*game.Battle, error) {
	unlock := rt.locks.Lock(roomID)
	defer unlock()

	var seed *int64
	debug := false
	old, err := rt.repo.Load(ctx, roomID)
	switch {
	case err == nil:
		seed, debug = old.Seed, old.DebugMode
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	b, err := rt.engine.NewBattle(roomID, seed)
	if err != nil {
		return nil, err
	}
	b.DebugMode = debug
	if err := rt.repo.Save(ctx, roomID, b); err != nil {
		return nil, err
	}
	logging.Info("battle reset", logging.Fields{constants.LogFieldRoomID: roomID, "seeded": seed != nil})
	return b, nil
}

// Status returns a snapshot of the room battle.
func (rt *Runtime) Status(ctx context.Context, roomID int64) (*game.Battle, error) {
	unlock := rt.locks.Lock(roomID)
	defer unlock()
	return rt.load(ctx, roomID)
}

// Seed returns the room seed; nil means the stream was seeded from the system.
func (rt *Runtime) Seed(ctx context.Context, roomID int64) (*int64, error) {
	b, err := rt.Status(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return b.Seed, nil
}

// SetSeed re-seeds the room stream and turns on the debug seed display.
func (rt *Runtime) SetSeed(ctx context.Context, roomID, seed int64) (*game.Battle, error) {
	unlock := rt.locks.Lock(roomID)
	defer unlock()

	b, err := rt.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	rt.engine.SetSeed(b, seed)
	b.DebugMode = true
	if err := rt.repo.Save(ctx, roomID, b); err != nil {
		return nil, err
	}
	logging.Info("battle seed set", logging.Fields{constants.LogFieldRoomID: roomID, "seed": seed})
	return b, nil
}

// Submit records an action for actorID and resolves the round once both
// participants have acted. Rejections are returned as results, not errors,
// and are not persisted. Round reports are published while the room lock is
// held so feed subscribers see rounds in order.
func (rt *Runtime) Submit(ctx context.Context, roomID, actorID int64) (SubmitOutcome, error) {
	unlock := rt.locks.Lock(roomID)
	defer unlock()

	b, err := rt.load(ctx, roomID)
	if err != nil {
		return SubmitOutcome{}, err
	}
	res, err := rt.duel.SubmitAction(b, actorID)
	if err != nil {
		logging.Error("submit action failed", err, logging.Fields{constants.LogFieldRoomID: roomID, constants.LogFieldActorID: actorID})
		return SubmitOutcome{}, err
	}
	fields := logging.Fields{constants.LogFieldRoomID: roomID, constants.LogFieldActorID: actorID, "status": string(res.Status)}
	if res.Status != SubmitAccepted {
		logging.Debug("submission rejected", fields)
		return SubmitOutcome{SubmitResult: res, Battle: b}, nil
	}
	if err := rt.repo.Save(ctx, roomID, b); err != nil {
		return SubmitOutcome{}, err
	}
	fields[constants.LogFieldSkill] = res.Ordinal
	if res.Log == nil {
		logging.Info("action locked in", fields)
		return SubmitOutcome{SubmitResult: res, Battle: b}, nil
	}

	fields[constants.LogFieldRound] = res.Log.Round
	if b.IsOver {
		fields[constants.LogFieldWinner] = string(b.Winner)
	}
	logging.Info("round resolved", fields)
	rt.publish(roomID, b, res.Log)
	return SubmitOutcome{SubmitResult: res, Battle: b}, nil
}

// publish hands the rendered round to the feed.
func (rt *Runtime) publish(roomID int64, b *game.Battle, log *game.Log) {
	if rt.publisher == nil || rt.renderer == nil {
		return
	}
	rt.publisher.Publish(hub.Report{
		RoomID: roomID,
		Round:  log.Round,
		Text:   rt.renderer.Report(b, log),
		Over:   b.IsOver,
		Winner: string(b.Winner),
	})
}

// Delete removes the room battle.
func (rt *Runtime) Delete(ctx context.Context, roomID int64) error {
	unlock := rt.locks.Lock(roomID)
	defer unlock()

	if err := rt.repo.Delete(ctx, roomID); err != nil {
		return err
	}
	logging.Info("battle deleted", logging.Fields{constants.LogFieldRoomID: roomID})
	return nil
}

func (rt *Runtime) load(ctx context.Context, roomID int64) (*game.Battle, error) {
	b, err := rt.repo.Load(ctx, roomID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrBattleNotFound
	}
	return b, err
}
