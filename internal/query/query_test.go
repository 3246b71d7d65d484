package query

import (
	"testing"
	"time"

	"artvault/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func fixture() ([]inventory.Painting, []inventory.Project) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	paintings := []inventory.Painting{
		{ID: 1, Title: "Senja di Merapi", Theme: "Pemandangan", Location: "Kamar 101", Price: 2000000, Status: inventory.StatusSold, CreationDate: base, ProjectID: uintPtr(1)},
		{ID: 2, Title: "Garis Biru", Theme: "Abstrak", Price: 1000000, Status: inventory.StatusAvailable, CreationDate: base.AddDate(0, 0, 1), ProjectID: uintPtr(1)},
		{ID: 3, Title: "Potret Ibu", Theme: "Potret", Description: "komisi keluarga", Price: 3000000, Status: inventory.StatusBooked, CreationDate: base.AddDate(0, 0, 2)},
		// dangling reference: project 99 does not exist
		{ID: 4, Title: "Pasar Pagi", Theme: "Pemandangan", Price: 500000, Status: inventory.StatusSold, CreationDate: base.AddDate(0, 0, 3), ProjectID: uintPtr(99)},
	}
	projects := []inventory.Project{
		{ID: 1, Name: "Hotel Bintang 5", Client: "PT Graha", TotalNeeded: 5},
	}
	return paintings, projects
}

func TestDashboard(t *testing.T) {
	paintings, projects := fixture()
	stats := Dashboard(paintings, projects)

	assert.Equal(t, 4, stats.TotalPaintings)
	assert.Equal(t, 2, stats.SoldCount)
	assert.Equal(t, 2500000.0, stats.SoldValue)
	assert.Equal(t, 1, stats.BookedCount)
	assert.Equal(t, 1, stats.TotalProjects)

	require.Len(t, stats.Recent, 4)
	// newest first
	assert.Equal(t, uint(4), stats.Recent[0].ID)
	assert.Equal(t, uint(1), stats.Recent[3].ID)
}

func TestDashboardEmptyStore(t *testing.T) {
	stats := Dashboard(nil, nil)
	assert.Equal(t, 0, stats.TotalPaintings)
	assert.Equal(t, 0.0, stats.SoldValue)
	assert.Empty(t, stats.Recent)
}

func TestDashboardRecentCapsAtTen(t *testing.T) {
	var paintings []inventory.Painting
	for i := 0; i < 15; i++ {
		paintings = append(paintings, inventory.Painting{
			ID:           uint(i + 1),
			CreationDate: time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	stats := Dashboard(paintings, nil)
	require.Len(t, stats.Recent, 10)
	assert.Equal(t, uint(15), stats.Recent[0].ID)
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	paintings, _ := fixture()
	assert.Equal(t, paintings, Search(paintings, "", Filters{}))
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	paintings, _ := fixture()

	got := Search(paintings, "MERAPI", Filters{})
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)

	// matches description too
	got = Search(paintings, "keluarga", Filters{})
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)

	// matches location
	got = Search(paintings, "kamar 1", Filters{})
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestSearchFilters(t *testing.T) {
	paintings, _ := fixture()

	got := Search(paintings, "", Filters{Status: inventory.StatusSold})
	assert.Len(t, got, 2)

	got = Search(paintings, "", Filters{Theme: "Pemandangan", Status: inventory.StatusSold})
	assert.Len(t, got, 2)

	got = Search(paintings, "", Filters{ProjectID: uintPtr(1)})
	assert.Len(t, got, 2)

	// dangling project filter still works, no error
	got = Search(paintings, "", Filters{ProjectID: uintPtr(99)})
	require.Len(t, got, 1)
	assert.Equal(t, uint(4), got[0].ID)

	got = Search(paintings, "garis", Filters{Status: inventory.StatusSold})
	assert.Empty(t, got)
}

func TestProjectRollup(t *testing.T) {
	paintings, projects := fixture()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	r := ProjectRollup(projects[0], paintings, now)
	assert.Equal(t, 2, r.AssignedCount)
	assert.True(t, r.PercentKnown)
	assert.Equal(t, 40, r.PercentComplete)
	assert.Nil(t, r.DaysToDeadline)
}

func TestProjectRollupPercentages(t *testing.T) {
	paintings := []inventory.Painting{
		{ID: 1, ProjectID: uintPtr(7)},
		{ID: 2, ProjectID: uintPtr(7)},
		{ID: 3, ProjectID: uintPtr(7)},
	}
	r := ProjectRollup(inventory.Project{ID: 7, TotalNeeded: 5}, paintings, time.Now())
	assert.Equal(t, 60, r.PercentComplete)
	assert.True(t, r.PercentKnown)

	// totalNeeded 0 means unknown, never a division error
	r = ProjectRollup(inventory.Project{ID: 7, TotalNeeded: 0}, paintings, time.Now())
	assert.Equal(t, 0, r.PercentComplete)
	assert.False(t, r.PercentKnown)
}

func TestProjectRollupDeadline(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	future := now.AddDate(0, 0, 5)
	r := ProjectRollup(inventory.Project{ID: 1, Deadline: &future}, nil, now)
	require.NotNil(t, r.DaysToDeadline)
	assert.Equal(t, 5, *r.DaysToDeadline)

	past := now.AddDate(0, 0, -3)
	r = ProjectRollup(inventory.Project{ID: 1, Deadline: &past}, nil, now)
	require.NotNil(t, r.DaysToDeadline)
	assert.Equal(t, -3, *r.DaysToDeadline)
}

func TestUpcomingDeadlines(t *testing.T) {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	in2 := now.AddDate(0, 0, 2)
	in10 := now.AddDate(0, 0, 10)
	past := now.AddDate(0, 0, -1)

	projects := []inventory.Project{
		{ID: 1, Name: "Segera", Deadline: &in2},
		{ID: 2, Name: "Nanti", Deadline: &in10},
		{ID: 3, Name: "Lewat", Deadline: &past},
		{ID: 4, Name: "Tanpa Deadline"},
	}

	got := UpcomingDeadlines(projects, now, 3)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestBuildReport(t *testing.T) {
	paintings, projects := fixture()
	r := BuildReport(paintings, projects)

	assert.Equal(t, 4, r.TotalPaintings)
	assert.Equal(t, 2, r.SoldCount)
	assert.Equal(t, 2500000.0, r.SoldValue)
	assert.Equal(t, 6500000.0, r.InventoryValue)

	require.Len(t, r.Projects, 1)
	assert.Equal(t, 2, r.Projects[0].AssignedCount)
	// painting 1 is the only sold one assigned to project 1
	assert.Equal(t, 2000000.0, r.Projects[0].SoldValue)
}
