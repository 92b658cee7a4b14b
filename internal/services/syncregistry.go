package services

import (
	"context"
	"log"
	"sync"
	"time"

	"watchquote/api/internal/models"
	"watchquote/api/internal/parser"
	"watchquote/api/internal/repositories"
)

// IncomingMessage is one message pushed by the external sync client.
type IncomingMessage struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
}

// SyncIngester processes live message batches for a single user.
type SyncIngester struct {
	userID     int64
	quotations *repositories.QuotationRepository
	groups     *repositories.GroupRepository
}

// IngestBatch extracts quotations from a batch of live messages and records
// sync progress for the group. Messages arrive already segmented, so only
// the extraction stages run.
func (si *SyncIngester) IngestBatch(ctx context.Context, groupID string, batch []IncomingMessage) (int, error) {
	messages := make([]models.Message, len(batch))
	for i, m := range batch {
		messages[i] = models.Message{
			Timestamp: m.Timestamp,
			Author:    m.Author,
			Body:      m.Body,
		}
	}

	quotations := parser.AssembleQuotations(messages)
	for i := range quotations {
		quotations[i].UserID = si.userID
	}

	if len(quotations) > 0 {
		if err := si.quotations.InsertBatch(ctx, quotations); err != nil {
			si.recordError(ctx, groupID, err)
			return 0, err
		}
	}

	lastMessage := time.Now()
	if n := len(batch); n > 0 {
		lastMessage = batch[n-1].Timestamp
	}
	if err := si.groups.RecordBatch(ctx, si.userID, groupID, len(batch), lastMessage); err != nil {
		si.recordError(ctx, groupID, err)
		return len(quotations), err
	}
	if err := si.groups.SetSyncStatus(ctx, si.userID, groupID, models.SyncStatusRunning, &lastMessage, nil); err != nil {
		return len(quotations), err
	}

	return len(quotations), nil
}

func (si *SyncIngester) recordError(ctx context.Context, groupID string, cause error) {
	msg := cause.Error()
	if err := si.groups.SetSyncStatus(ctx, si.userID, groupID, models.SyncStatusError, nil, &msg); err != nil {
		log.Printf("Failed to record sync error for user %d group %s: %v", si.userID, groupID, err)
	}
}

// SyncRegistry hands out one SyncIngester per user, creating it on first
// use. The registry is safe for concurrent use by HTTP handlers.
type SyncRegistry struct {
	quotations *repositories.QuotationRepository
	groups     *repositories.GroupRepository

	mu        sync.Mutex
	ingesters map[int64]*SyncIngester
}

func NewSyncRegistry(quotations *repositories.QuotationRepository, groups *repositories.GroupRepository) *SyncRegistry {
	return &SyncRegistry{
		quotations: quotations,
		groups:     groups,
		ingesters:  make(map[int64]*SyncIngester),
	}
}

// ForUser returns the ingester for a user, creating it if needed. Repeated
// calls for the same user return the same instance.
func (r *SyncRegistry) ForUser(userID int64) *SyncIngester {
	r.mu.Lock()
	defer r.mu.Unlock()

	if si, ok := r.ingesters[userID]; ok {
		return si
	}
	si := &SyncIngester{
		userID:     userID,
		quotations: r.quotations,
		groups:     r.groups,
	}
	r.ingesters[userID] = si
	return si
}

// Shutdown drops all per-user ingesters.
func (r *SyncRegistry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ingesters = make(map[int64]*SyncIngester)
}
