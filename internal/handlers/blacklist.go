package handlers

import (
	"encoding/json"
	"net/http"

	"watchquote/api/internal/models"
	"watchquote/api/internal/repositories"
)

type BlacklistHandler struct {
	repo *repositories.BlacklistRepository
}

func NewBlacklistHandler(repo *repositories.BlacklistRepository) *BlacklistHandler {
	return &BlacklistHandler{
		repo: repo,
	}
}

type blacklistRequest struct {
	PhoneNumber string  `json:"phoneNumber"`
	Reason      *string `json:"reason,omitempty"`
}

// Handle dispatches /blacklist by method: GET lists, POST adds, DELETE removes.
func (h *BlacklistHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := UserID(r)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, userID)
	case http.MethodPost:
		h.add(w, r, userID)
	case http.MethodDelete:
		h.remove(w, r, userID)
	default:
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (h *BlacklistHandler) list(w http.ResponseWriter, r *http.Request, userID int64) {
	entries, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []models.BlacklistEntry{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (h *BlacklistHandler) add(w http.ResponseWriter, r *http.Request, userID int64) {
	var req blacklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.PhoneNumber == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "phoneNumber is required"})
		return
	}

	if err := h.repo.Add(r.Context(), userID, req.PhoneNumber, req.Reason); err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "added"})
}

func (h *BlacklistHandler) remove(w http.ResponseWriter, r *http.Request, userID int64) {
	phone := r.URL.Query().Get("phoneNumber")
	if phone == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "phoneNumber is required"})
		return
	}

	if err := h.repo.Remove(r.Context(), userID, phone); err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
