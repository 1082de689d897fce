package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BattleRecord is the battles table row. The whole battle is stored as one
// JSON document so the engine state round-trips without a relational mapping.
type BattleRecord struct {
	RoomID    int64       `gorm:"primaryKey;autoIncrement:false"`
	State     game.Battle `gorm:"serializer:json;not null"`
	UpdatedAt time.Time   `gorm:"not null"`
}

func (BattleRecord) TableName() string { return "battles" }

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dataSourceName != ":memory:" && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&BattleRecord{}); err != nil {
		return nil, err
	}
	logging.Info("battle store ready", logging.Fields{"path": dataSourceName})
	return db, nil
}
