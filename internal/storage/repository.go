package storage

import (
	"context"
	"errors"

	"github.com/ericogr/duel-arena/internal/game"
)

// ErrNotFound is returned by Load when a room has no battle document.
var ErrNotFound = errors.New("battle not found")

// Repository persists one battle document per room.
type Repository interface {
	Load(ctx context.Context, roomID int64) (*game.Battle, error)
	// Save inserts or replaces the room document.
	Save(ctx context.Context, roomID int64, b *game.Battle) error
	Delete(ctx context.Context, roomID int64) error
}
