package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"ai-course-assistant-be/internal/repository/implementation"
	"ai-course-assistant-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	dimension := 768
	if v, err := strconv.Atoi(os.Getenv("EMBEDDING_SIZE")); err == nil && v > 0 {
		dimension = v
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")
	ctx := context.Background()

	// 3. Chunk store owns the vector extension and its raw table
	log.Printf("Step 1: Chunk store (vector dimension %d)...", dimension)
	if err := implementation.NewChunkRepository(db, dimension).Init(ctx); err != nil {
		log.Fatal("Error: chunk store migration failed:", err)
	}

	log.Println("Step 2: Chat history store...")
	if err := implementation.NewChatHistoryRepository(db).Init(ctx); err != nil {
		log.Fatal("Error: chat history migration failed:", err)
	}

	log.Println("Step 3: Ingestion log store...")
	if err := implementation.NewIngestionLogRepository(db).Init(ctx); err != nil {
		log.Fatal("Error: ingestion log migration failed:", err)
	}

	log.Println("Migration complete.")
}
