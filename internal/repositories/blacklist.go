package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"watchquote/api/internal/models"
)

type BlacklistRepository struct {
	db *pgxpool.Pool
}

func NewBlacklistRepository(db *pgxpool.Pool) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

// Add blacklists a seller phone number for the user.
func (r *BlacklistRepository) Add(ctx context.Context, userID int64, phoneNumber string, reason *string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO blacklist (user_id, phone_number, reason)
		VALUES ($1, $2, $3)
	`, userID, phoneNumber, reason)
	if err != nil {
		return fmt.Errorf("failed to add to blacklist: %w", err)
	}
	return nil
}

// Remove drops a phone number from the user's blacklist.
func (r *BlacklistRepository) Remove(ctx context.Context, userID int64, phoneNumber string) error {
	_, err := r.db.Exec(ctx,
		"DELETE FROM blacklist WHERE user_id = $1 AND phone_number = $2",
		userID, phoneNumber)
	if err != nil {
		return fmt.Errorf("failed to remove from blacklist: %w", err)
	}
	return nil
}

// ListByUser returns the user's blacklist, newest first.
func (r *BlacklistRepository) ListByUser(ctx context.Context, userID int64) ([]models.BlacklistEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, phone_number, reason, created_at
		FROM blacklist
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query blacklist: %w", err)
	}
	defer rows.Close()

	var entries []models.BlacklistEntry
	for rows.Next() {
		var e models.BlacklistEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.PhoneNumber, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blacklist entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blacklist: %w", err)
	}
	return entries, nil
}

// IsBlacklisted reports whether a phone number is blacklisted by the user.
func (r *BlacklistRepository) IsBlacklisted(ctx context.Context, userID int64, phoneNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM blacklist WHERE user_id = $1 AND phone_number = $2
		)
	`, userID, phoneNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return exists, nil
}
