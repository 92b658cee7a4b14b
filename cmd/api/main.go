package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"watchquote/api/internal/handlers"
	"watchquote/api/internal/repositories"
	"watchquote/api/internal/services"
)

func main() {
	// Database connection
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer pool.Close()

	// Initialize repositories
	quotationRepo := repositories.NewQuotationRepository(pool)
	chatFileRepo := repositories.NewChatFileRepository(pool)
	blacklistRepo := repositories.NewBlacklistRepository(pool)
	groupRepo := repositories.NewGroupRepository(pool)

	// Initialize services
	fileStore, err := services.NewFileStore(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize file store:", err)
	}
	ingestionService := services.NewIngestionService(chatFileRepo, quotationRepo, fileStore)
	syncRegistry := services.NewSyncRegistry(quotationRepo, groupRepo)
	defer syncRegistry.Shutdown()

	// Initialize handlers
	chatFilesHandler := handlers.NewChatFilesHandler(ingestionService, chatFileRepo)
	quotationsHandler := handlers.NewQuotationsHandler(quotationRepo)
	blacklistHandler := handlers.NewBlacklistHandler(blacklistRepo)
	syncHandler := handlers.NewSyncHandler(syncRegistry, groupRepo)

	// Setup routes
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	// Chat file endpoints
	mux.HandleFunc("/chat-files/upload", chatFilesHandler.HandleUpload)
	mux.HandleFunc("/chat-files", chatFilesHandler.HandleList)

	// Quotation endpoints
	mux.HandleFunc("/quotations/search", quotationsHandler.HandleSearch)
	mux.HandleFunc("/quotations/by-model", quotationsHandler.HandleByModel)

	// Blacklist endpoint (method-dispatched)
	mux.HandleFunc("/blacklist", blacklistHandler.Handle)

	// Group and live sync endpoints
	mux.HandleFunc("/groups", syncHandler.HandleGroups)
	mux.HandleFunc("/sync/messages", syncHandler.HandleMessages)
	mux.HandleFunc("/sync/status", syncHandler.HandleSyncStatus)

	// CORS middleware for development
	handler := handlers.CORSMiddleware(mux)

	log.Println("Go API listening on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
