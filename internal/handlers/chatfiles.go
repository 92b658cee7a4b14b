package handlers

import (
	"encoding/json"
	"net/http"

	"watchquote/api/internal/models"
	"watchquote/api/internal/repositories"
	"watchquote/api/internal/services"
)

type ChatFilesHandler struct {
	ingestion *services.IngestionService
	chatFiles *repositories.ChatFileRepository
}

func NewChatFilesHandler(ingestion *services.IngestionService, chatFiles *repositories.ChatFileRepository) *ChatFilesHandler {
	return &ChatFilesHandler{
		ingestion: ingestion,
		chatFiles: chatFiles,
	}
}

type uploadRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"` // base64
}

// HandleUpload handles POST /chat-files/upload
func (h *ChatFilesHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	userID, err := UserID(r)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Filename == "" || req.Content == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "filename and content are required"})
		return
	}

	stats, err := h.ingestion.IngestBase64(r.Context(), userID, req.Filename, req.Content)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"chatFileId":       stats.ChatFileID,
		"totalMessages":    stats.TotalMessages,
		"parsedQuotations": stats.ParsedQuotations,
	})
}

// HandleList handles GET /chat-files
func (h *ChatFilesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	userID, err := UserID(r)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	files, err := h.chatFiles.ListByUser(r.Context(), userID)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// Ensure items is always an array, never null
	if files == nil {
		files = []models.ChatFile{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": files})
}
