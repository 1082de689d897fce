package storage

import (
	"context"
	"errors"
	"time"

	"github.com/ericogr/duel-arena/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Load(ctx context.Context, roomID int64) (*game.Battle, error) {
	var rec BattleRecord
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b := rec.State
	if b.Pending == nil {
		b.Pending = map[int64]int{}
	}
	return &b, nil
}

func (r *sqliteRepository) Save(ctx context.Context, roomID int64, b *game.Battle) error {
	rec := BattleRecord{RoomID: roomID, State: *b, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}).Create(&rec).Error
}

func (r *sqliteRepository) Delete(ctx context.Context, roomID int64) error {
	return r.db.WithContext(ctx).Where("room_id = ?", roomID).Delete(&BattleRecord{}).Error
}
