package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"watchquote/api/internal/models"
	"watchquote/api/internal/repositories"
	"watchquote/api/internal/services"
)

const (
	// Advisory lock key for reparse jobs
	reparseLockKey = 2
	// Default worker pool size
	defaultWorkers = 3
)

type reparseStats struct {
	Total      int
	Processed  int
	Quotations int
	Errors     int
	mu         sync.Mutex
}

func (s *reparseStats) RecordSuccess(quotations int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Processed++
	s.Quotations += quotations
}

func (s *reparseStats) RecordError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors++
}

func main() {
	userID := flag.Int64("user", 0, "Only reparse files belonging to this user (0 = all users)")
	limit := flag.Int("limit", 0, "Maximum number of files to process (0 = no limit)")
	dryRun := flag.Bool("dry-run", false, "Dry run mode: log what would be reparsed without making changes")
	workers := flag.Int("workers", defaultWorkers, "Number of worker goroutines")
	flag.Parse()

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
	err = pool.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", reparseLockKey).Scan(&lockAcquired)
	if err != nil {
		log.Fatal("Failed to check advisory lock:", err)
	}

	if !lockAcquired {
		log.Println("Another reparse job is already running. Exiting gracefully.")
		os.Exit(0)
	}

	defer func() {
		_, unlockErr := pool.Exec(ctx, "SELECT pg_advisory_unlock($1)", reparseLockKey)
		if unlockErr != nil {
			log.Printf("Warning: Failed to release advisory lock: %v", unlockErr)
		}
	}()

	log.Println("✅ Acquired advisory lock, starting reparse...")
	if *dryRun {
		log.Println("🔍 DRY RUN MODE: No changes will be made")
	}

	// Query chat files to reparse
	query := `
		SELECT id, user_id, filename, file_key, upload_date, total_messages, parsed_quotations
		FROM chat_files
	`
	var args []interface{}
	if *userID > 0 {
		query += " WHERE user_id = $1"
		args = append(args, *userID)
	}
	query += " ORDER BY id"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		log.Fatalf("Failed to query chat files: %v", err)
	}

	var files []models.ChatFile
	for rows.Next() {
		var f models.ChatFile
		err := rows.Scan(&f.ID, &f.UserID, &f.Filename, &f.FileKey,
			&f.UploadDate, &f.TotalMessages, &f.ParsedQuotations)
		if err != nil {
			rows.Close()
			log.Fatalf("Failed to scan chat file: %v", err)
		}
		files = append(files, f)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		log.Fatalf("Error iterating chat files: %v", err)
	}

	if len(files) == 0 {
		log.Println("No chat files found matching criteria")
		os.Exit(0)
	}

	if *limit > 0 && *limit < len(files) {
		log.Printf("⚠️  Limiting to %d files", *limit)
		files = files[:*limit]
	}
	log.Printf("📊 Found %d files to reparse", len(files))

	fileStore, err := services.NewFileStore(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize file store:", err)
	}
	chatFileRepo := repositories.NewChatFileRepository(pool)
	quotationRepo := repositories.NewQuotationRepository(pool)
	ingestionService := services.NewIngestionService(chatFileRepo, quotationRepo, fileStore)

	if *workers < 1 {
		*workers = 1
	}
	if *workers > 10 {
		log.Printf("⚠️  Limiting workers to 10 (requested: %d)", *workers)
		*workers = 10
	}

	stats := &reparseStats{Total: len(files)}
	workChan := make(chan models.ChatFile, *workers*2)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for file := range workChan {
				if *dryRun {
					log.Printf("[DRY RUN] Would reparse chat file %d (%s) for user %d",
						file.ID, file.Filename, file.UserID)
					stats.RecordSuccess(0)
					continue
				}
				result, err := ingestionService.Reparse(ctx, &file)
				if err != nil {
					log.Printf("[Worker %d] Failed to reparse chat file %d: %v", workerID, file.ID, err)
					stats.RecordError()
					continue
				}
				stats.RecordSuccess(result.ParsedQuotations)
			}
		}(i)
	}

	for _, f := range files {
		workChan <- f
	}
	close(workChan)
	wg.Wait()

	log.Println("✅ Reparse completed")
	log.Printf("📊 Statistics:")
	log.Printf("   Total: %d", stats.Total)
	log.Printf("   Processed: %d", stats.Processed)
	log.Printf("   Quotations: %d", stats.Quotations)
	log.Printf("   Errors: %d", stats.Errors)

	if stats.Errors > 0 {
		log.Printf("⚠️  Warning: %d errors occurred during reparse", stats.Errors)
		os.Exit(1)
	}
}
