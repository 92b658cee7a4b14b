package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"watchquote/api/internal/repositories"
	"watchquote/api/internal/services"
)

// Advisory lock key for transcript ingestion jobs
const ingestLockKey = 1

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: go run ./cmd/ingest-file <transcript-path> <user-id>")
	}

	transcriptPath := os.Args[1]
	userID, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil || userID <= 0 {
		log.Fatalf("Invalid user id %q", os.Args[2])
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer pool.Close()

	// Try to acquire advisory lock
	var lockAcquired bool
	err = pool.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", ingestLockKey).Scan(&lockAcquired)
	if err != nil {
		log.Fatal("Failed to check advisory lock:", err)
	}

	if !lockAcquired {
		log.Println("Another ingestion job is already running. Exiting gracefully.")
		os.Exit(0)
	}

	defer func() {
		_, unlockErr := pool.Exec(ctx, "SELECT pg_advisory_unlock($1)", ingestLockKey)
		if unlockErr != nil {
			log.Printf("Warning: Failed to release advisory lock: %v", unlockErr)
		}
	}()

	log.Println("✅ Acquired advisory lock, starting file ingestion...")

	raw, err := os.ReadFile(transcriptPath)
	if err != nil {
		log.Fatalf("Failed to read transcript: %v", err)
	}

	fileStore, err := services.NewFileStore(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize file store:", err)
	}

	chatFileRepo := repositories.NewChatFileRepository(pool)
	quotationRepo := repositories.NewQuotationRepository(pool)
	ingestionService := services.NewIngestionService(chatFileRepo, quotationRepo, fileStore)

	stats, err := ingestionService.IngestText(ctx, userID, filepath.Base(transcriptPath), raw)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	log.Println("✅ File ingestion completed successfully")
	log.Printf("📊 Statistics:")
	log.Printf("   Chat file id: %d", stats.ChatFileID)
	log.Printf("   Messages: %d", stats.TotalMessages)
	log.Printf("   Quotations: %d", stats.ParsedQuotations)
}
