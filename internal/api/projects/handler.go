package projects

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"artvault/internal/domain/inventory"
	"artvault/internal/query"
	"artvault/internal/store"

	"github.com/gin-gonic/gin"
)

// DeadlineWindowDays is how far ahead the reminder endpoint looks.
const DeadlineWindowDays = 3

type Handler struct {
	Projects  *store.Projects
	Paintings *store.Paintings
}

func NewHandler(pr *store.Projects, pa *store.Paintings) *Handler {
	return &Handler{Projects: pr, Paintings: pa}
}

type projectInput struct {
	Name        string     `json:"name"`
	Client      string     `json:"client"`
	TotalNeeded uint       `json:"totalNeeded"`
	Deadline    *time.Time `json:"deadline"`
	Notes       string     `json:"notes"`
}

func (in projectInput) toProject() inventory.Project {
	return inventory.Project{
		Name:        in.Name,
		Client:      in.Client,
		TotalNeeded: in.TotalNeeded,
		Deadline:    in.Deadline,
		Notes:       in.Notes,
	}
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.Projects.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get returns the project together with its rollup (assigned count,
// percent complete, days to deadline).
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pr, err := h.Projects.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	paintings, err := h.Paintings.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load paintings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":   pr,
		"rollup":    query.ProjectRollup(pr, paintings, time.Now()),
		"paintings": query.Search(paintings, "", query.Filters{ProjectID: &pr.ID}),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var input projectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pr := input.toProject()
	if violations := inventory.ValidateProject(pr); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": violations})
		return
	}

	id, err := h.Projects.Insert(c.Request.Context(), &pr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project"})
		return
	}
	pr.ID = id
	c.JSON(http.StatusCreated, pr)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input projectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pr := input.toProject()
	pr.ID = id
	if violations := inventory.ValidateProject(pr); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": violations})
		return
	}

	if err := h.Projects.Replace(c.Request.Context(), pr); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project"})
		return
	}
	c.JSON(http.StatusOK, pr)
}

// Delete removes the project only. Paintings that reference it keep their
// projectId: the relation is weak and readers tolerate the orphan.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Projects.DeleteByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// Deadlines lists projects due within the reminder window, for the
// notification collaborator.
func (h *Handler) Deadlines(c *gin.Context) {
	projects, err := h.Projects.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, query.UpcomingDeadlines(projects, time.Now(), DeadlineWindowDays))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
