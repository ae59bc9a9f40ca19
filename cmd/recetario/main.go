package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/recetario-dev/recetario/db"
	"github.com/recetario-dev/recetario/internal/auth"
	"github.com/recetario-dev/recetario/internal/router"
	"github.com/recetario-dev/recetario/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	dbPath := os.Getenv("DB_PATH")

	if dbPath == "" {
		dbPath = filepath.Join("data", "recetario.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	gdb, err := db.Connect(dbPath)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(store.New(gdb))

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3001"
		log.Println("PORT not set, defaulting to 3001")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
