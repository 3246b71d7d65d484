package vault

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"artvault/internal/backup"
	"artvault/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Stores *store.Stores
}

func NewHandler(st *store.Stores) *Handler {
	return &Handler{Stores: st}
}

// Export streams the full snapshot as a JSON download.
func (h *Handler) Export(c *gin.Context) {
	snap, err := backup.Export(c.Request.Context(), h.Stores)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create backup"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="artvault-backup-%s.json"`, time.Now().Format("2006-01-02")))
	c.IndentedJSON(http.StatusOK, snap)
}

// Import replaces all data with an uploaded snapshot. The request must
// carry ?confirm=true: without it nothing is touched and the caller gets a
// 409 describing what would be overwritten.
func (h *Handler) Import(c *gin.Context) {
	snap, err := backup.Decode(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup file", "details": err.Error()})
		return
	}

	confirm := c.Query("confirm") == "true"
	if err := backup.Import(c.Request.Context(), h.Stores, snap, confirm); err != nil {
		if errors.Is(err, backup.ErrNotConfirmed) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Confirmation required: import overwrites all current data",
				"paintings": len(snap.Paintings),
				"projects":  len(snap.Projects),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore backup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": gin.H{"paintings": len(snap.Paintings), "projects": len(snap.Projects)},
	})
}
