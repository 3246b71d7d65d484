package paintings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"artvault/internal/domain/inventory"
	"artvault/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Paintings *store.Paintings
}

func NewHandler(p *store.Paintings) *Handler {
	return &Handler{Paintings: p}
}

type paintingInput struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Theme        string              `json:"theme"`
	Dimensions   string              `json:"dimensions"`
	Medium       string              `json:"medium"`
	Location     string              `json:"location"`
	Price        float64             `json:"price"`
	Status       inventory.Status    `json:"status"`
	PhotoPaths   inventory.PhotoList `json:"photoPaths"`
	CreationDate *time.Time          `json:"creationDate"`
	ProjectID    *uint               `json:"projectId"`
}

func (in paintingInput) toPainting() inventory.Painting {
	status := in.Status
	if status == "" {
		status = inventory.StatusAvailable
	}
	return inventory.Painting{
		Title:       in.Title,
		Description: in.Description,
		Theme:       in.Theme,
		Dimensions:  in.Dimensions,
		Medium:      in.Medium,
		Location:    in.Location,
		Price:       in.Price,
		Status:      status,
		PhotoPaths:  in.PhotoPaths,
		ProjectID:   in.ProjectID,
	}
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.Paintings.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load paintings"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.Paintings.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var input paintingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := input.toPainting()
	p.CreationDate = time.Now()

	if violations := inventory.ValidatePainting(p); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": violations})
		return
	}

	id, err := h.Paintings.Insert(c.Request.Context(), &p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save painting"})
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existing, err := h.Paintings.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting"})
		return
	}

	var input paintingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := input.toPainting()
	p.ID = id
	// creationDate is set once at insert and never moves.
	p.CreationDate = existing.CreationDate

	if violations := inventory.ValidatePainting(p); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": violations})
		return
	}

	if err := h.Paintings.Replace(c.Request.Context(), p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save painting"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Paintings.DeleteByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete painting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
