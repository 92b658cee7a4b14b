package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"watchquote/api/internal/models"
)

type ChatFileRepository struct {
	db *pgxpool.Pool
}

func NewChatFileRepository(db *pgxpool.Pool) *ChatFileRepository {
	return &ChatFileRepository{db: db}
}

// Create stores an upload record and returns its id.
func (r *ChatFileRepository) Create(ctx context.Context, file *models.ChatFile) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO chat_files (user_id, filename, file_key, total_messages, parsed_quotations)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, file.UserID, file.Filename, file.FileKey, file.TotalMessages, file.ParsedQuotations).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create chat file record: %w", err)
	}
	return id, nil
}

// ListByUser returns a user's uploads, newest first.
func (r *ChatFileRepository) ListByUser(ctx context.Context, userID int64) ([]models.ChatFile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, filename, file_key, upload_date, total_messages, parsed_quotations
		FROM chat_files
		WHERE user_id = $1
		ORDER BY upload_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat files: %w", err)
	}
	defer rows.Close()

	var files []models.ChatFile
	for rows.Next() {
		var f models.ChatFile
		err := rows.Scan(&f.ID, &f.UserID, &f.Filename, &f.FileKey,
			&f.UploadDate, &f.TotalMessages, &f.ParsedQuotations)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat files: %w", err)
	}
	return files, nil
}

// UpdateStats refreshes the message and quotation counters after a re-parse.
func (r *ChatFileRepository) UpdateStats(ctx context.Context, fileID int64, totalMessages, parsedQuotations int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE chat_files
		SET total_messages = $2, parsed_quotations = $3
		WHERE id = $1
	`, fileID, totalMessages, parsedQuotations)
	if err != nil {
		return fmt.Errorf("failed to update chat file stats: %w", err)
	}
	return nil
}
