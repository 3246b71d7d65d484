package routes

import (
	authapi "artvault/internal/api/auth"
	paintingsapi "artvault/internal/api/paintings"
	projectsapi "artvault/internal/api/projects"
	reportsapi "artvault/internal/api/reports"
	vaultapi "artvault/internal/api/vault"
	"artvault/internal/app/http/middleware"
	"artvault/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, st *store.Stores, secret []byte) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := authapi.NewHandler(st.Settings, secret)
	r.GET("/pin", authHandler.Status)
	r.POST("/pin", authHandler.Create)
	r.POST("/pin/unlock", authHandler.Unlock)

	paintingsHandler := paintingsapi.NewHandler(st.Paintings)
	projectsHandler := projectsapi.NewHandler(st.Projects, st.Paintings)
	reportsHandler := reportsapi.NewHandler(st.Paintings, st.Projects)
	vaultHandler := vaultapi.NewHandler(st)

	// Everything behind the PIN gate
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(secret))

	auth.POST("/pin/reset", authHandler.Reset)

	auth.GET("/paintings", paintingsHandler.List)
	auth.GET("/paintings/:id", paintingsHandler.Get)
	auth.DELETE("/paintings/:id", paintingsHandler.Delete)

	auth.GET("/projects", projectsHandler.List)
	auth.GET("/projects/:id", projectsHandler.Get)
	auth.DELETE("/projects/:id", projectsHandler.Delete)

	auth.GET("/search", reportsHandler.Search)
	auth.GET("/dashboard", reportsHandler.Dashboard)
	auth.GET("/report", reportsHandler.Report)
	auth.GET("/report/csv", reportsHandler.ExportCSV)
	auth.GET("/report/paintings.json", reportsHandler.ExportPaintingsJSON)
	auth.GET("/deadlines", projectsHandler.Deadlines)

	auth.GET("/vault/export", vaultHandler.Export)
	auth.POST("/vault/import", vaultHandler.Import)

	// Writes additionally pass bluemonday input sanitization
	write := auth.Group("/")
	write.Use(middleware.SanitizeInputMiddleware())

	write.POST("/paintings", paintingsHandler.Create)
	write.PUT("/paintings/:id", paintingsHandler.Update)
	write.POST("/projects", projectsHandler.Create)
	write.PUT("/projects/:id", projectsHandler.Update)
}
