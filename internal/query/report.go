package query

import (
	"time"

	"artvault/internal/domain/inventory"
)

type ProjectReport struct {
	ProjectID     uint       `json:"projectId"`
	Name          string     `json:"name"`
	Client        string     `json:"client"`
	AssignedCount int        `json:"assignedCount"`
	TotalNeeded   uint       `json:"totalNeeded"`
	SoldValue     float64    `json:"soldValue"`
	Deadline      *time.Time `json:"deadline"`
}

type Report struct {
	TotalPaintings int             `json:"totalPaintings"`
	SoldCount      int             `json:"soldCount"`
	SoldValue      float64         `json:"soldValue"`
	InventoryValue float64         `json:"inventoryValue"`
	Projects       []ProjectReport `json:"projects"`
}

// BuildReport computes the sales report: global sold value, total inventory
// value over every painting regardless of status, and a per-project sold
// value breakdown.
func BuildReport(paintings []inventory.Painting, projects []inventory.Project) Report {
	r := Report{
		TotalPaintings: len(paintings),
		Projects:       []ProjectReport{},
	}
	for _, p := range paintings {
		r.InventoryValue += p.Price
		if p.Status == inventory.StatusSold {
			r.SoldCount++
			r.SoldValue += p.Price
		}
	}

	for _, pr := range projects {
		row := ProjectReport{
			ProjectID:   pr.ID,
			Name:        pr.Name,
			Client:      pr.Client,
			TotalNeeded: pr.TotalNeeded,
			Deadline:    pr.Deadline,
		}
		for _, p := range paintings {
			if p.ProjectID == nil || *p.ProjectID != pr.ID {
				continue
			}
			row.AssignedCount++
			if p.Status == inventory.StatusSold {
				row.SoldValue += p.Price
			}
		}
		r.Projects = append(r.Projects, row)
	}

	return r
}
