package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"artvault/database"
	"artvault/internal/api/auth"
	"artvault/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	st := store.New(db)

	h := auth.NewHandler(st.Settings, []byte("test-secret"))
	r := gin.New()
	r.GET("/pin", h.Status)
	r.POST("/pin", h.Create)
	r.POST("/pin/unlock", h.Unlock)
	r.POST("/pin/reset", h.Reset)
	return r
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func pinExists(t *testing.T, r *gin.Engine) bool {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pin", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Exists bool `json:"exists"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Exists
}

func TestPinLifecycle(t *testing.T) {
	r := setup(t)

	assert.False(t, pinExists(t, r))

	// create
	w := post(r, "/pin", gin.H{"pin": "1234"})
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Token)
	assert.True(t, pinExists(t, r))

	// second create is rejected
	assert.Equal(t, http.StatusConflict, post(r, "/pin", gin.H{"pin": "9999"}).Code)

	// wrong pin
	assert.Equal(t, http.StatusUnauthorized, post(r, "/pin/unlock", gin.H{"pin": "0000"}).Code)

	// right pin
	w = post(r, "/pin/unlock", gin.H{"pin": "1234"})
	assert.Equal(t, http.StatusOK, w.Code)

	// reset, then create again
	assert.Equal(t, http.StatusOK, post(r, "/pin/reset", nil).Code)
	assert.False(t, pinExists(t, r))
	assert.Equal(t, http.StatusOK, post(r, "/pin", gin.H{"pin": "4321"}).Code)
}

func TestPinMustBeFourDigits(t *testing.T) {
	r := setup(t)
	assert.Equal(t, http.StatusBadRequest, post(r, "/pin", gin.H{"pin": "12"}).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, "/pin", gin.H{"pin": "12345"}).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, "/pin", gin.H{"pin": "abcd"}).Code)
}
