package inventory

import "time"

// Painting is one physical artwork. JSON field names are fixed by the
// backup file format and must not change.
type Painting struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Theme       string `gorm:"index" json:"theme"`
	Dimensions  string `json:"dimensions"`
	Medium      string `json:"medium"`
	Location    string `json:"location"`

	Price  float64 `gorm:"not null;default:0" json:"price"`
	Status Status  `gorm:"type:text;not null;default:'Available';index" json:"status"`

	PhotoPaths PhotoList `gorm:"type:text" json:"photoPaths"`

	// Set once at creation, immutable afterward.
	CreationDate time.Time `json:"creationDate"`

	// Weak reference: deleting a project does NOT cascade here, so this
	// may point at a project that no longer exists. Readers must tolerate
	// the dangling id.
	ProjectID *uint `gorm:"index" json:"projectId"`
}
