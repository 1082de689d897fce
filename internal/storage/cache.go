package storage

import (
	"context"
	"sync"

	"github.com/ericogr/duel-arena/internal/dedupe"
	"github.com/ericogr/duel-arena/internal/game"
)

// cachedRepository is a read-through cache over another Repository. Only deep
// copies cross its boundary so callers can mutate what they load.
type cachedRepository struct {
	inner  Repository
	flight dedupe.BattleLoads

	mu      sync.RWMutex
	battles map[int64]*game.Battle
}

func NewCachedRepository(inner Repository) Repository {
	return &cachedRepository{inner: inner, battles: make(map[int64]*game.Battle)}
}

func (r *cachedRepository) Load(ctx context.Context, roomID int64) (*game.Battle, error) {
	r.mu.RLock()
	cached, ok := r.battles[roomID]
	r.mu.RUnlock()
	if ok {
		return cached.Clone(), nil
	}

	b, err := r.flight.Do(roomID, func() (*game.Battle, error) {
		b, err := r.inner.Load(ctx, roomID)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.battles[roomID] = b
		r.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

func (r *cachedRepository) Save(ctx context.Context, roomID int64, b *game.Battle) error {
	if err := r.inner.Save(ctx, roomID, b); err != nil {
		return err
	}
	r.mu.Lock()
	r.battles[roomID] = b.Clone()
	r.mu.Unlock()
	return nil
}

func (r *cachedRepository) Delete(ctx context.Context, roomID int64) error {
	if err := r.inner.Delete(ctx, roomID); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.battles, roomID)
	r.mu.Unlock()
	return nil
}
