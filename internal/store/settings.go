package store

import (
	"context"
	"errors"

	"artvault/internal/domain/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Settings stores app-level key/value state (the PIN hash).
type Settings struct {
	db *gorm.DB
}

func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

// Get returns the value for key, or ErrNotFound.
func (s *Settings) Get(ctx context.Context, key string) (string, error) {
	var row settings.Setting
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		return "", wrap("get setting", err)
	}
	return row.Value, nil
}

// Put inserts or overwrites the value for key.
func (s *Settings) Put(ctx context.Context, key, value string) error {
	row := settings.Setting{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return wrap("put setting", err)
	}
	return nil
}

func (s *Settings) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&settings.Setting{}, "key = ?", key).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return wrap("delete setting", err)
	}
	return nil
}
