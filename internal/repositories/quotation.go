package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"watchquote/api/internal/models"
)

type QuotationRepository struct {
	db *pgxpool.Pool
}

func NewQuotationRepository(db *pgxpool.Pool) *QuotationRepository {
	return &QuotationRepository{db: db}
}

type QuotationSearchParams struct {
	SearchTerm string
	SortBy     string // "price_asc", "price_desc", "date_desc" (default)
	Limit      int
	Offset     int
}

// InsertBatch stores a set of quotations in one round trip.
func (r *QuotationRepository) InsertBatch(ctx context.Context, quotations []models.Quotation) error {
	if len(quotations) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, q := range quotations {
		batch.Queue(`
			INSERT INTO quotations (
				user_id, chat_file_id, watch_model, price, currency,
				warranty_date, seller_phone, seller_name, quote_date, message_text
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, q.UserID, q.ChatFileID, q.WatchModel, q.PriceMinorUnits, string(q.Currency),
			q.WarrantyDate, q.SellerPhone, q.SellerName, q.QuoteDate, q.MessageText)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range quotations {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert quotation: %w", err)
		}
	}
	return nil
}

// Search returns a user's quotations, newest first by default, excluding any
// seller the user has blacklisted. The search term matches watch models as a
// substring.
func (r *QuotationRepository) Search(ctx context.Context, userID int64, params QuotationSearchParams) ([]models.Quotation, error) {
	conditions := "q.user_id = $1 AND NOT EXISTS (" +
		"SELECT 1 FROM blacklist b WHERE b.user_id = q.user_id AND b.phone_number = q.seller_phone)"
	args := []interface{}{userID}
	argPos := 2

	if params.SearchTerm != "" {
		conditions += fmt.Sprintf(" AND q.watch_model ILIKE $%d", argPos)
		args = append(args, "%"+params.SearchTerm+"%")
		argPos++
	}

	orderBy := "q.quote_date DESC"
	switch params.SortBy {
	case "price_asc":
		orderBy = "q.price ASC"
	case "price_desc":
		orderBy = "q.price DESC"
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT
			q.id, q.user_id, q.chat_file_id, q.watch_model, q.price, q.currency,
			q.warranty_date, q.seller_phone, q.seller_name, q.quote_date,
			q.message_text, q.created_at
		FROM quotations q
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, conditions, orderBy, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotations: %w", err)
	}
	defer rows.Close()

	return scanQuotations(rows)
}

// ByModel returns every quotation for one exact watch model, cheapest first,
// with blacklisted sellers excluded.
func (r *QuotationRepository) ByModel(ctx context.Context, userID int64, watchModel string) ([]models.Quotation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			q.id, q.user_id, q.chat_file_id, q.watch_model, q.price, q.currency,
			q.warranty_date, q.seller_phone, q.seller_name, q.quote_date,
			q.message_text, q.created_at
		FROM quotations q
		WHERE q.user_id = $1
		  AND q.watch_model = $2
		  AND NOT EXISTS (
			SELECT 1 FROM blacklist b
			WHERE b.user_id = q.user_id AND b.phone_number = q.seller_phone
		  )
		ORDER BY q.price ASC
	`, userID, watchModel)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotations by model: %w", err)
	}
	defer rows.Close()

	return scanQuotations(rows)
}

// DeleteByChatFile removes the quotations extracted from one uploaded file,
// used before re-parsing it.
func (r *QuotationRepository) DeleteByChatFile(ctx context.Context, userID, chatFileID int64) error {
	_, err := r.db.Exec(ctx,
		"DELETE FROM quotations WHERE user_id = $1 AND chat_file_id = $2",
		userID, chatFileID)
	if err != nil {
		return fmt.Errorf("failed to delete quotations for chat file %d: %w", chatFileID, err)
	}
	return nil
}

// CountByUser returns how many quotations a user has stored.
func (r *QuotationRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM quotations WHERE user_id = $1", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count quotations: %w", err)
	}
	return count, nil
}

func scanQuotations(rows pgx.Rows) ([]models.Quotation, error) {
	var quotations []models.Quotation
	for rows.Next() {
		var q models.Quotation
		var currency string
		err := rows.Scan(
			&q.ID, &q.UserID, &q.ChatFileID, &q.WatchModel, &q.PriceMinorUnits,
			&currency, &q.WarrantyDate, &q.SellerPhone, &q.SellerName,
			&q.QuoteDate, &q.MessageText, &q.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		q.Currency = models.Currency(currency)
		quotations = append(quotations, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotations: %w", err)
	}
	return quotations, nil
}
