package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	Port       string
	PublicDir  string
	UploadDir  string
	CORSOrigin string

	// AuthMode selects how the secondary login identifier is checked
	// against the stored value: "plain" (exact match) or "bcrypt".
	AuthMode string
)

// Runs at package load, so a .env file is in the environment before any of
// the values above are read.
var _ = Load()

// Load pulls an optional .env file into the process environment and
// recomputes every config value. Real deployments that set the environment
// directly simply have no .env to read.
func Load() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		// a broken .env is skipped, not fatal; the environment still applies
		log.Println("config: skipping .env:", err)
	}

	DBHost = getenv("DB_HOST", "localhost")
	DBUser = getenv("DB_USER", "postgres")
	DBPassword = os.Getenv("DB_PASSWORD")
	DBName = getenv("DB_NAME", "studentdb")
	DBPort = getenv("DB_PORT", "5432")

	Port = getenv("PORT", "3001")
	PublicDir = getenv("PUBLIC_DIR", "public")
	UploadDir = getenv("UPLOAD_DIR", "public/uploads")
	CORSOrigin = getenv("CORS_ORIGIN", "*")

	AuthMode = getenv("AUTH_MODE", "plain")
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
