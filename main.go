package main

import (
	"fmt"
	"log"
	"time"

	"artvault/config"
	"artvault/database"
	routes "artvault/internal/app/http"
	"artvault/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Open(config.DB_PATH)
	if err != nil {
		log.Fatal("❌ Failed to open database:", err)
	}
	fmt.Println("✅ Database ready at", config.DB_PATH)

	st := store.New(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, st, []byte(config.SESSION_SECRET))

	r.Run(":" + config.PORT)
}
