package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by lookups and replaces on an id that does
	// not exist in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrStorage wraps failures of the underlying medium (file missing,
	// disk full, closed handle). Callers surface it and abandon the
	// operation; there is no automatic retry.
	ErrStorage = errors.New("storage unavailable")
)

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w: %v", op, ErrStorage, err)
}
