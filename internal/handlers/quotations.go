package handlers

import (
	"net/http"
	"strconv"

	"watchquote/api/internal/models"
	"watchquote/api/internal/repositories"
)

type QuotationsHandler struct {
	repo *repositories.QuotationRepository
}

func NewQuotationsHandler(repo *repositories.QuotationRepository) *QuotationsHandler {
	return &QuotationsHandler{
		repo: repo,
	}
}

// HandleSearch handles GET /quotations/search
func (h *QuotationsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	userID, err := UserID(r)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	params := repositories.QuotationSearchParams{
		SearchTerm: r.URL.Query().Get("search"),
		SortBy:     r.URL.Query().Get("sortBy"),
		Limit:      limit,
		Offset:     offset,
	}

	items, err := h.repo.Search(r.Context(), userID, params)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// Ensure items is always an array, never null
	if items == nil {
		items = []models.Quotation{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// HandleByModel handles GET /quotations/by-model
func (h *QuotationsHandler) HandleByModel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	userID, err := UserID(r)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	model := r.URL.Query().Get("model")
	if model == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "model is required"})
		return
	}

	items, err := h.repo.ByModel(r.Context(), userID, model)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if items == nil {
		items = []models.Quotation{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}
