package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT           string
	DB_PATH        string
	SESSION_SECRET string
	CORS_ORIGIN    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_PATH = getEnv("DB_PATH", "data/artvault.db")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	// Single-user local app: a fresh random secret per process just means
	// the UI has to unlock again after a restart.
	SESSION_SECRET = getEnv("SESSION_SECRET", randomSecret())
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate session secret: %v", err)
	}
	return hex.EncodeToString(b)
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
