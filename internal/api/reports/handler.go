package reports

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"artvault/internal/backup"
	"artvault/internal/domain/inventory"
	"artvault/internal/query"
	"artvault/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Paintings *store.Paintings
	Projects  *store.Projects
}

func NewHandler(pa *store.Paintings, pr *store.Projects) *Handler {
	return &Handler{Paintings: pa, Projects: pr}
}

func (h *Handler) Dashboard(c *gin.Context) {
	paintings, projects, ok := h.loadAll(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, query.Dashboard(paintings, projects))
}

// Search filters the painting collection by free text and the optional
// status/theme/project_id query parameters.
func (h *Handler) Search(c *gin.Context) {
	paintings, err := h.Paintings.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load paintings"})
		return
	}

	f := query.Filters{
		Status: inventory.Status(c.Query("status")),
		Theme:  c.Query("theme"),
	}
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
			return
		}
		pid := uint(id)
		f.ProjectID = &pid
	}
	if f.Status != "" && !f.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	c.JSON(http.StatusOK, query.Search(paintings, c.Query("q"), f))
}

func (h *Handler) Report(c *gin.Context) {
	paintings, projects, ok := h.loadAll(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, query.BuildReport(paintings, projects))
}

// ExportCSV streams the flat painting table as a CSV download.
func (h *Handler) ExportCSV(c *gin.Context) {
	paintings, projects, ok := h.loadAll(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="artvault-lukisan-%s.csv"`, time.Now().Format("2006-01-02")))
	c.Header("Content-Type", "text/csv")
	if err := backup.WriteCSV(c.Writer, paintings, projects); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
	}
}

// ExportPaintingsJSON streams the bare JSON array of paintings.
func (h *Handler) ExportPaintingsJSON(c *gin.Context) {
	paintings, err := h.Paintings.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load paintings"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="artvault-lukisan.json"`)
	c.Header("Content-Type", "application/json")
	if err := backup.WritePaintingsJSON(c.Writer, paintings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write JSON"})
	}
}

func (h *Handler) loadAll(c *gin.Context) ([]inventory.Painting, []inventory.Project, bool) {
	paintings, err := h.Paintings.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load paintings"})
		return nil, nil, false
	}
	projects, err := h.Projects.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return nil, nil, false
	}
	return paintings, projects, true
}
