// Package storage persists a best-effort audit log of served predictions.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
)

// PredictionLog is one served prediction. Only the categorical context and
// the result are kept; volumes are not interesting for auditing.
type PredictionLog struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Region    string
	Type      string
	Year      int
	Price     float64
}

// HistoryStore writes prediction logs to Postgres.
type HistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore connects to Postgres and migrates the log table.
func NewHistoryStore(databaseURL string) (*HistoryStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect history db: %w", err)
	}
	if err := db.AutoMigrate(&PredictionLog{}); err != nil {
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

// Record inserts one log row.
func (s *HistoryStore) Record(ctx context.Context, rec models.FeatureRecord, price float64) error {
	row := PredictionLog{
		ID:     uuid.NewString(),
		Region: rec.Region,
		Type:   rec.Type,
		Year:   rec.Year,
		Price:  price,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}
