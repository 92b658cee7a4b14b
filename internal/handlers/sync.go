package handlers

import (
	"encoding/json"
	"net/http"

	"watchquote/api/internal/models"
	"watchquote/api/internal/repositories"
	"watchquote/api/internal/services"
)

type SyncHandler struct {
	registry *services.SyncRegistry
	groups   *repositories.GroupRepository
}

func NewSyncHandler(registry *services.SyncRegistry, groups *repositories.GroupRepository) *SyncHandler {
	return &SyncHandler{
		registry: registry,
		groups:   groups,
	}
}

type groupRequest struct {
	GroupID   string `json:"groupId"`
	GroupName string `json:"groupName"`
}

// HandleGroups dispatches /groups by method: GET lists monitored groups,
// POST registers one, DELETE deactivates one.
func (h *SyncHandler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	userID, err := UserID(r)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	switch r.Method {
	case http.MethodGet:
		groups, err := h.groups.ListByUser(r.Context(), userID)
		if err != nil {
			WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if groups == nil {
			groups = []models.Group{}
		}
		WriteJSON(w, http.StatusOK, map[string]any{"items": groups})

	case http.MethodPost:
		var req groupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if req.GroupID == "" || req.GroupName == "" {
			WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "groupId and groupName are required"})
			return
		}
		if err := h.groups.Upsert(r.Context(), userID, req.GroupID, req.GroupName); err != nil {
			WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "registered"})

	case http.MethodDelete:
		groupID := r.URL.Query().Get("groupId")
		if groupID == "" {
			WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "groupId is required"})
			return
		}
		if err := h.groups.Deactivate(r.Context(), userID, groupID); err != nil {
			WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})

	default:
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

type syncBatchRequest struct {
	GroupID  string                     `json:"groupId"`
	Messages []services.IncomingMessage `json:"messages"`
}

// HandleMessages handles POST /sync/messages, a live batch pushed by the
// external sync client.
func (h *SyncHandler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	userID, err := UserID(r)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	var req syncBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.GroupID == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "groupId is required"})
		return
	}

	extracted, err := h.registry.ForUser(userID).IngestBatch(r.Context(), req.GroupID, req.Messages)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"received":   len(req.Messages),
		"quotations": extracted,
	})
}

// HandleSyncStatus handles GET /sync/status
func (h *SyncHandler) HandleSyncStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	userID, err := UserID(r)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	statuses, err := h.groups.SyncStatuses(r.Context(), userID)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if statuses == nil {
		statuses = []models.SyncStatus{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"items": statuses})
}
