// Package backup implements the snapshot protocol: a full JSON export of
// both collections and the destructive restore that replaces the store
// contents with a snapshot.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"artvault/internal/domain/inventory"
	"artvault/internal/store"

	"gorm.io/gorm"
)

const SnapshotVersion = 1

var (
	// ErrInvalidFormat means the snapshot is structurally broken (not
	// JSON, or missing the paintings/projects arrays). Raised before any
	// destructive action, so a bad file never touches the store.
	ErrInvalidFormat = errors.New("invalid backup format")

	// ErrNotConfirmed means the caller has not acknowledged that import
	// overwrites the current data.
	ErrNotConfirmed = errors.New("import not confirmed")
)

// Snapshot is the sole state-transfer format and the inter-version
// compatibility contract.
type Snapshot struct {
	Version    int                  `json:"version"`
	ExportDate time.Time            `json:"exportDate"`
	Paintings  []inventory.Painting `json:"paintings"`
	Projects   []inventory.Project  `json:"projects"`
}

// Export reads both collections in full and wraps them in a snapshot.
func Export(ctx context.Context, st *store.Stores) (Snapshot, error) {
	paintings, err := st.Paintings.GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	projects, err := st.Projects.GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Version:    SnapshotVersion,
		ExportDate: time.Now().UTC(),
		Paintings:  paintings,
		Projects:   projects,
	}, nil
}

// deadlineDate tolerates every deadline shape found in real backup files:
// RFC 3339 timestamps, the bare "2006-01-02" a date picker produces, and
// ""/null for "no deadline".
type deadlineDate struct {
	t  time.Time
	ok bool
}

func (d *deadlineDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.t, d.ok = t, true
			return nil
		}
	}
	return fmt.Errorf("unrecognized deadline %q", s)
}

func (d deadlineDate) timePtr() *time.Time {
	if !d.ok {
		return nil
	}
	t := d.t
	return &t
}

// snapshotProject mirrors inventory.Project with the forgiving deadline
// decoding the backup contract needs.
type snapshotProject struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Client      string       `json:"client"`
	TotalNeeded uint         `json:"totalNeeded"`
	Deadline    deadlineDate `json:"deadline"`
	Notes       string       `json:"notes"`
}

// Decode parses and structurally validates a snapshot. Both the paintings
// and projects keys must be present; an empty collection is fine, a
// missing one is not.
func Decode(r io.Reader) (Snapshot, error) {
	var raw struct {
		Version    int                   `json:"version"`
		ExportDate time.Time             `json:"exportDate"`
		Paintings  *[]inventory.Painting `json:"paintings"`
		Projects   *[]snapshotProject    `json:"projects"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if raw.Paintings == nil {
		return Snapshot{}, fmt.Errorf("%w: missing paintings", ErrInvalidFormat)
	}
	if raw.Projects == nil {
		return Snapshot{}, fmt.Errorf("%w: missing projects", ErrInvalidFormat)
	}

	projects := make([]inventory.Project, len(*raw.Projects))
	for i, sp := range *raw.Projects {
		projects[i] = inventory.Project{
			ID:          sp.ID,
			Name:        sp.Name,
			Client:      sp.Client,
			TotalNeeded: sp.TotalNeeded,
			Deadline:    sp.Deadline.timePtr(),
			Notes:       sp.Notes,
		}
	}

	return Snapshot{
		Version:    raw.Version,
		ExportDate: raw.ExportDate,
		Paintings:  *raw.Paintings,
		Projects:   projects,
	}, nil
}

// Import replaces the entire store contents with the snapshot. Destructive,
// so confirm must be true. The clear and reinsert run inside one sqlite
// transaction: a crash mid-import rolls back to the prior state instead of
// leaving the store half-populated.
//
// Snapshot ids are kept as-is (the store accepts caller-supplied ids on the
// restore path), so painting→project references survive unchanged. The
// records are a trusted bulk import and skip field validation.
func Import(ctx context.Context, st *store.Stores, snap Snapshot, confirm bool) error {
	if !confirm {
		return ErrNotConfirmed
	}
	return st.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ts := store.New(tx)
		if err := ts.Paintings.Clear(ctx); err != nil {
			return err
		}
		if err := ts.Projects.Clear(ctx); err != nil {
			return err
		}
		for _, pr := range snap.Projects {
			if err := ts.Projects.Restore(ctx, pr); err != nil {
				return err
			}
		}
		for _, p := range snap.Paintings {
			if err := ts.Paintings.Restore(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
}
