// Package store is the record store: durable, indexed persistence for the
// painting and project collections over a single shared sqlite handle.
//
// Ids are assigned by the store at insert time, never by callers — except
// on the restore path, which may carry ids in from a snapshot. Secondary
// indexes (painting project/status/theme, project name) are sqlite indexes
// declared on the models, so every mutation updates them in the same
// statement that touches the row.
package store

import "gorm.io/gorm"

// Stores bundles the per-collection repositories around one database
// handle. Built once at startup and passed to whatever needs persistence.
type Stores struct {
	DB        *gorm.DB
	Paintings *Paintings
	Projects  *Projects
	Settings  *Settings
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		DB:        db,
		Paintings: NewPaintings(db),
		Projects:  NewProjects(db),
		Settings:  NewSettings(db),
	}
}
