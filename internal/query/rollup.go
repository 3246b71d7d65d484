package query

import (
	"math"
	"time"

	"artvault/internal/domain/inventory"
)

type Rollup struct {
	AssignedCount int `json:"assignedCount"`

	// PercentComplete is meaningless when the project has no target count;
	// PercentKnown is false in that case and the UI shows "?".
	PercentComplete int  `json:"percentComplete"`
	PercentKnown    bool `json:"percentKnown"`

	// Days until the deadline, rounded up. Negative means the deadline has
	// passed. Absent when the project has no deadline.
	DaysToDeadline *int `json:"daysToDeadline,omitempty"`
}

// ProjectRollup computes progress numbers for one project from the full
// painting collection. Paintings referencing a deleted project simply count
// toward nothing here.
func ProjectRollup(pr inventory.Project, paintings []inventory.Painting, now time.Time) Rollup {
	r := Rollup{}
	for _, p := range paintings {
		if p.ProjectID != nil && *p.ProjectID == pr.ID {
			r.AssignedCount++
		}
	}

	if pr.TotalNeeded > 0 {
		r.PercentComplete = int(math.Round(float64(r.AssignedCount) / float64(pr.TotalNeeded) * 100))
		r.PercentKnown = true
	}

	if pr.Deadline != nil {
		days := daysUntil(*pr.Deadline, now)
		r.DaysToDeadline = &days
	}

	return r
}

func daysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// UpcomingDeadlines returns projects whose deadline falls within the next
// window days (inclusive, today counts as 0). Feeds the deadline reminder
// collaborator.
func UpcomingDeadlines(projects []inventory.Project, now time.Time, window int) []inventory.Project {
	out := []inventory.Project{}
	for _, pr := range projects {
		if pr.Deadline == nil {
			continue
		}
		days := daysUntil(*pr.Deadline, now)
		if days >= 0 && days <= window {
			out = append(out, pr)
		}
	}
	return out
}
