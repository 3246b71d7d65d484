package inventory

import "time"

// Project is a commission grouping of paintings.
type Project struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name   string `gorm:"not null;index" json:"name"`
	Client string `json:"client"`

	// Target painting count. 0 means "unspecified", not "complete".
	TotalNeeded uint `gorm:"not null;default:0" json:"totalNeeded"`

	Deadline *time.Time `json:"deadline"`
	Notes    string     `json:"notes"`
}
