// Package query computes derived views over full snapshots of the painting
// and project collections. Everything here is pure: callers load the data
// (store GetAll) and pass it in; nothing is cached or persisted.
package query

import (
	"sort"

	"artvault/internal/domain/inventory"
)

type DashboardStats struct {
	TotalPaintings int                  `json:"totalPaintings"`
	SoldCount      int                  `json:"soldCount"`
	SoldValue      float64              `json:"soldValue"`
	BookedCount    int                  `json:"bookedCount"`
	TotalProjects  int                  `json:"totalProjects"`
	Recent         []inventory.Painting `json:"recent"`
}

// Dashboard aggregates the home-screen numbers. Recent is the newest ten
// paintings by creation date.
func Dashboard(paintings []inventory.Painting, projects []inventory.Project) DashboardStats {
	stats := DashboardStats{
		TotalPaintings: len(paintings),
		TotalProjects:  len(projects),
		Recent:         []inventory.Painting{},
	}
	for _, p := range paintings {
		switch p.Status {
		case inventory.StatusSold:
			stats.SoldCount++
			stats.SoldValue += p.Price
		case inventory.StatusBooked:
			stats.BookedCount++
		}
	}

	recent := make([]inventory.Painting, len(paintings))
	copy(recent, paintings)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreationDate.After(recent[j].CreationDate)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.Recent = recent

	return stats
}
