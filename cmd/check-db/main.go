package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer pool.Close()

	var quotations int
	err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM quotations").Scan(&quotations)
	if err != nil {
		log.Fatal("Failed to count quotations:", err)
	}

	var chatFiles int
	err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM chat_files").Scan(&chatFiles)
	if err != nil {
		log.Fatal("Failed to count chat files:", err)
	}

	var blacklisted int
	err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM blacklist").Scan(&blacklisted)
	if err != nil {
		log.Fatal("Failed to count blacklist:", err)
	}

	var groups int
	err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM groups WHERE is_active").Scan(&groups)
	if err != nil {
		log.Fatal("Failed to count groups:", err)
	}

	fmt.Printf("📊 Database Statistics:\n")
	fmt.Printf("   Quotations: %d\n", quotations)
	fmt.Printf("   Chat files: %d\n", chatFiles)
	fmt.Printf("   Blacklisted numbers: %d\n", blacklisted)
	fmt.Printf("   Active groups: %d\n", groups)

	// Show the most recent quotations
	rows, err := pool.Query(ctx, `
		SELECT watch_model, price, currency, seller_phone, quote_date
		FROM quotations
		ORDER BY created_at DESC
		LIMIT 5
	`)
	if err != nil {
		log.Fatal("Failed to query:", err)
	}
	defer rows.Close()

	fmt.Printf("\n📋 Recent quotations:\n")
	for rows.Next() {
		var model, currency, phone string
		var price int64
		var quoteDate time.Time
		if err := rows.Scan(&model, &price, &currency, &phone, &quoteDate); err != nil {
			continue
		}
		fmt.Printf("   %s: %s %.2f from %s (quoted %s)\n",
			model, currency, float64(price)/100, phone, quoteDate.Format("2006-01-02"))
	}
}
