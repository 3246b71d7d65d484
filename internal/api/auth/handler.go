// Package auth implements the local numeric PIN gate. The PIN only blocks
// the UI until unlocked; it has no effect on stored inventory data.
package auth

import (
	"errors"
	"net/http"
	"time"

	"artvault/internal/domain/settings"
	"artvault/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 12 * time.Hour

type Handler struct {
	Settings *store.Settings
	Secret   []byte
}

func NewHandler(st *store.Settings, secret []byte) *Handler {
	return &Handler{Settings: st, Secret: secret}
}

func isValidPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Status tells the UI whether a PIN exists yet, so it can show either the
// create or the unlock keypad.
func (h *Handler) Status(c *gin.Context) {
	_, err := h.Settings.Get(c.Request.Context(), settings.PinHashKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": err == nil})
}

// Create sets the PIN for the first time and returns a session token.
func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Pin string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !isValidPin(input.Pin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PIN must be exactly 4 digits"})
		return
	}

	if _, err := h.Settings.Get(c.Request.Context(), settings.PinHashKey); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "PIN already set"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read settings"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Pin), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash PIN"})
		return
	}
	if err := h.Settings.Put(c.Request.Context(), settings.PinHashKey, string(hash)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save PIN"})
		return
	}

	h.issueToken(c)
}

// Unlock verifies the PIN and returns a session token.
func (h *Handler) Unlock(c *gin.Context) {
	var input struct {
		Pin string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := h.Settings.Get(c.Request.Context(), settings.PinHashKey)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusConflict, gin.H{"error": "No PIN set"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read settings"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Pin)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong PIN"})
		return
	}

	h.issueToken(c)
}

// Reset clears the stored PIN so a new one can be created. Only reachable
// from behind an unlocked session.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.Settings.Delete(c.Request.Context(), settings.PinHashKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset PIN"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

func (h *Handler) issueToken(c *gin.Context) {
	claims := jwt.MapClaims{
		"unlocked": true,
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": signed})
}
