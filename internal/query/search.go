package query

import (
	"strings"

	"artvault/internal/domain/inventory"
)

// Filters narrows a search to exact matches on the given fields. Zero
// values mean "no filter".
type Filters struct {
	Status    inventory.Status
	Theme     string
	ProjectID *uint
}

// Search returns paintings matching the free-text query and every supplied
// filter. The query is a case-insensitive substring match over title,
// theme, location and description; empty query plus no filters returns all
// paintings.
func Search(paintings []inventory.Painting, q string, f Filters) []inventory.Painting {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []inventory.Painting{}
	for _, p := range paintings {
		if q != "" && !matchesText(p, q) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Theme != "" && p.Theme != f.Theme {
			continue
		}
		if f.ProjectID != nil && (p.ProjectID == nil || *p.ProjectID != *f.ProjectID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesText(p inventory.Painting, q string) bool {
	for _, field := range []string{p.Title, p.Theme, p.Location, p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
