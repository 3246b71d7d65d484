package store

import (
	"context"
	"errors"

	"artvault/internal/domain/inventory"

	"gorm.io/gorm"
)

// Paintings is the repository for the painting collection.
type Paintings struct {
	db *gorm.DB
}

func NewPaintings(db *gorm.DB) *Paintings {
	return &Paintings{db: db}
}

// Insert persists a new painting and returns its store-assigned id. Any id
// already on the record is discarded.
func (s *Paintings) Insert(ctx context.Context, p *inventory.Painting) (uint, error) {
	p.ID = 0
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return 0, wrap("insert painting", err)
	}
	return p.ID, nil
}

// Replace fully overwrites an existing painting. Returns ErrNotFound when
// no record with that id exists.
func (s *Paintings) Replace(ctx context.Context, p inventory.Painting) error {
	var existing inventory.Painting
	err := s.db.WithContext(ctx).First(&existing, p.ID).Error
	if err != nil {
		return wrap("replace painting", err)
	}
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return wrap("replace painting", err)
	}
	return nil
}

func (s *Paintings) GetByID(ctx context.Context, id uint) (inventory.Painting, error) {
	var p inventory.Painting
	err := s.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return inventory.Painting{}, wrap("get painting", err)
	}
	return p, nil
}

// GetAll returns every painting in store-native order.
func (s *Paintings) GetAll(ctx context.Context) ([]inventory.Painting, error) {
	out := []inventory.Painting{}
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, wrap("list paintings", err)
	}
	return out, nil
}

func (s *Paintings) GetByProject(ctx context.Context, projectID uint) ([]inventory.Painting, error) {
	out := []inventory.Painting{}
	err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&out).Error
	if err != nil {
		return nil, wrap("list paintings by project", err)
	}
	return out, nil
}

func (s *Paintings) GetByStatus(ctx context.Context, status inventory.Status) ([]inventory.Painting, error) {
	out := []inventory.Painting{}
	err := s.db.WithContext(ctx).Where("status = ?", status).Find(&out).Error
	if err != nil {
		return nil, wrap("list paintings by status", err)
	}
	return out, nil
}

func (s *Paintings) GetByTheme(ctx context.Context, theme string) ([]inventory.Painting, error) {
	out := []inventory.Painting{}
	err := s.db.WithContext(ctx).Where("theme = ?", theme).Find(&out).Error
	if err != nil {
		return nil, wrap("list paintings by theme", err)
	}
	return out, nil
}

// DeleteByID is idempotent: deleting an id that does not exist is not an
// error.
func (s *Paintings) DeleteByID(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Delete(&inventory.Painting{}, id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return wrap("delete painting", err)
	}
	return nil
}

// Clear removes every painting. Used only by restore.
func (s *Paintings) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&inventory.Painting{}).Error
	if err != nil {
		return wrap("clear paintings", err)
	}
	return nil
}

// Restore inserts a painting keeping the id it carries. Sqlite honors
// explicit ids on autoincrement columns, so snapshot ids survive a restore
// and projectId references stay intact.
func (s *Paintings) Restore(ctx context.Context, p inventory.Painting) error {
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return wrap("restore painting", err)
	}
	return nil
}
