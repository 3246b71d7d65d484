package store

import (
	"context"
	"errors"

	"artvault/internal/domain/inventory"

	"gorm.io/gorm"
)

// Projects is the repository for the project collection.
type Projects struct {
	db *gorm.DB
}

func NewProjects(db *gorm.DB) *Projects {
	return &Projects{db: db}
}

func (s *Projects) Insert(ctx context.Context, p *inventory.Project) (uint, error) {
	p.ID = 0
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return 0, wrap("insert project", err)
	}
	return p.ID, nil
}

func (s *Projects) Replace(ctx context.Context, p inventory.Project) error {
	var existing inventory.Project
	err := s.db.WithContext(ctx).First(&existing, p.ID).Error
	if err != nil {
		return wrap("replace project", err)
	}
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return wrap("replace project", err)
	}
	return nil
}

func (s *Projects) GetByID(ctx context.Context, id uint) (inventory.Project, error) {
	var p inventory.Project
	err := s.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return inventory.Project{}, wrap("get project", err)
	}
	return p, nil
}

func (s *Projects) GetAll(ctx context.Context) ([]inventory.Project, error) {
	out := []inventory.Project{}
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, wrap("list projects", err)
	}
	return out, nil
}

func (s *Projects) GetByName(ctx context.Context, name string) ([]inventory.Project, error) {
	out := []inventory.Project{}
	err := s.db.WithContext(ctx).Where("name = ?", name).Find(&out).Error
	if err != nil {
		return nil, wrap("list projects by name", err)
	}
	return out, nil
}

// DeleteByID removes a project. It never touches paintings that reference
// it: the projectId relation is weak and non-cascading, orphaned
// references are tolerated by readers.
func (s *Projects) DeleteByID(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Delete(&inventory.Project{}, id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return wrap("delete project", err)
	}
	return nil
}

func (s *Projects) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&inventory.Project{}).Error
	if err != nil {
		return wrap("clear projects", err)
	}
	return nil
}

// Restore inserts a project keeping the id it carries from a snapshot.
func (s *Projects) Restore(ctx context.Context, p inventory.Project) error {
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return wrap("restore project", err)
	}
	return nil
}
