package inventory

import "strings"

// Canonical theme choices offered by the UI. Free-form values are still
// accepted on write; this list only feeds form dropdowns.
func Themes() []string {
	return []string{"Pemandangan", "Abstrak", "Potret", "Alam Benda", "Modern", "Klasik", "Lainnya"}
}

// Violations maps a field name to a human-readable problem with it.
type Violations map[string]string

// ValidatePainting checks a candidate painting before it is written.
// Pure: no I/O, no store access.
func ValidatePainting(p Painting) Violations {
	v := Violations{}
	if strings.TrimSpace(p.Title) == "" {
		v["title"] = "title is required"
	}
	if len(p.PhotoPaths) == 0 {
		v["photoPaths"] = "at least one photo is required"
	}
	if p.Price < 0 {
		v["price"] = "price cannot be negative"
	}
	if !p.Status.Valid() {
		v["status"] = "unknown status"
	}
	return v
}

// ValidateProject checks a candidate project before it is written.
func ValidateProject(p Project) Violations {
	v := Violations{}
	if strings.TrimSpace(p.Name) == "" {
		v["name"] = "name is required"
	}
	return v
}
