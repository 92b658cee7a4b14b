package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"watchquote/api/internal/models"
)

type GroupRepository struct {
	db *pgxpool.Pool
}

func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

// Upsert registers a monitored group for the user, reactivating it if it was
// previously removed.
func (r *GroupRepository) Upsert(ctx context.Context, userID int64, groupID, groupName string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO groups (user_id, group_id, group_name, is_active)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (group_id) DO UPDATE SET
			group_name = EXCLUDED.group_name,
			is_active = true
	`, userID, groupID, groupName)
	if err != nil {
		return fmt.Errorf("failed to upsert group: %w", err)
	}
	return nil
}

// Deactivate stops monitoring a group without deleting its history.
func (r *GroupRepository) Deactivate(ctx context.Context, userID int64, groupID string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE groups SET is_active = false WHERE user_id = $1 AND group_id = $2",
		userID, groupID)
	if err != nil {
		return fmt.Errorf("failed to deactivate group: %w", err)
	}
	return nil
}

// ListByUser returns the user's groups, active first, newest first within
// each state.
func (r *GroupRepository) ListByUser(ctx context.Context, userID int64) ([]models.Group, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, group_id, group_name, is_active, last_sync_time, message_count, created_at
		FROM groups
		WHERE user_id = $1
		ORDER BY is_active DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		err := rows.Scan(&g.ID, &g.UserID, &g.GroupID, &g.GroupName,
			&g.IsActive, &g.LastSyncTime, &g.MessageCount, &g.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}
	return groups, nil
}

// RecordBatch bumps the counters after a batch of synced messages.
func (r *GroupRepository) RecordBatch(ctx context.Context, userID int64, groupID string, messageCount int, lastMessage time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE groups
		SET message_count = message_count + $3, last_sync_time = $4
		WHERE user_id = $1 AND group_id = $2
	`, userID, groupID, messageCount, lastMessage)
	if err != nil {
		return fmt.Errorf("failed to record sync batch: %w", err)
	}
	return nil
}

// SetSyncStatus upserts the sync health row for a group. errorMessage is nil
// unless status is the error state.
func (r *GroupRepository) SetSyncStatus(ctx context.Context, userID int64, groupID, status string, lastMessage *time.Time, errorMessage *string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_status (user_id, group_id, status, last_message, error_message, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id, group_id) DO UPDATE SET
			status = EXCLUDED.status,
			last_message = COALESCE(EXCLUDED.last_message, sync_status.last_message),
			error_message = EXCLUDED.error_message,
			updated_at = now()
	`, userID, groupID, status, lastMessage, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to set sync status: %w", err)
	}
	return nil
}

// SyncStatuses returns the sync health rows for a user's groups.
func (r *GroupRepository) SyncStatuses(ctx context.Context, userID int64) ([]models.SyncStatus, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, group_id, status, last_message, error_message, updated_at
		FROM sync_status
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync statuses: %w", err)
	}
	defer rows.Close()

	var statuses []models.SyncStatus
	for rows.Next() {
		var s models.SyncStatus
		err := rows.Scan(&s.ID, &s.UserID, &s.GroupID, &s.Status,
			&s.LastMessage, &s.ErrorMessage, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync status: %w", err)
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sync statuses: %w", err)
	}
	return statuses, nil
}
