package main

import (
	"context"
	"log"
	"os"

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

	// Create chat_files table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_files (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			filename VARCHAR NOT NULL,
			file_key VARCHAR NOT NULL,
			upload_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			total_messages INTEGER NOT NULL DEFAULT 0,
			parsed_quotations INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		log.Fatal("Failed to create chat_files table:", err)
	}
	log.Println("✅ Created chat_files table")

	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_chat_files_user_id ON chat_files(user_id);`)
	if err != nil {
		log.Fatal("Failed to create index on chat_files:", err)
	}

	// Create quotations table; price is in minor units (cents)
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS quotations (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			chat_file_id INTEGER REFERENCES chat_files(id) ON DELETE CASCADE,
			watch_model VARCHAR NOT NULL,
			price BIGINT NOT NULL,
			currency VARCHAR(3) NOT NULL,
			warranty_date VARCHAR,
			seller_phone VARCHAR NOT NULL,
			seller_name VARCHAR,
			quote_date TIMESTAMPTZ NOT NULL,
			message_text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	if err != nil {
		log.Fatal("Failed to create quotations table:", err)
	}
	log.Println("✅ Created quotations table")

	// Create indexes on quotations
	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_quotations_user_id ON quotations(user_id);`)
	if err != nil {
		log.Fatal("Failed to create index on quotations:", err)
	}
	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_quotations_watch_model ON quotations(watch_model);`)
	if err != nil {
		log.Fatal("Failed to create index on quotations:", err)
	}
	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_quotations_quote_date ON quotations(quote_date);`)
	if err != nil {
		log.Fatal("Failed to create index on quotations:", err)
	}
	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_quotations_chat_file_id ON quotations(chat_file_id);`)
	if err != nil {
		log.Fatal("Failed to create index on quotations:", err)
	}

	// Create blacklist table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS blacklist (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			phone_number VARCHAR NOT NULL,
			reason TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	if err != nil {
		log.Fatal("Failed to create blacklist table:", err)
	}
	log.Println("✅ Created blacklist table")

	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_blacklist_user_phone ON blacklist(user_id, phone_number);`)
	if err != nil {
		log.Fatal("Failed to create index on blacklist:", err)
	}

	// Create groups table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS groups (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			group_id VARCHAR NOT NULL UNIQUE,
			group_name VARCHAR NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			last_sync_time TIMESTAMPTZ,
			message_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	if err != nil {
		log.Fatal("Failed to create groups table:", err)
	}
	log.Println("✅ Created groups table")

	_, err = pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_groups_user_id ON groups(user_id);`)
	if err != nil {
		log.Fatal("Failed to create index on groups:", err)
	}

	// Create sync_status table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sync_status (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			group_id VARCHAR NOT NULL,
			status VARCHAR NOT NULL,
			last_message TIMESTAMPTZ,
			error_message TEXT,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, group_id)
		);
	`)
	if err != nil {
		log.Fatal("Failed to create sync_status table:", err)
	}
	log.Println("✅ Created sync_status table")

	log.Println("✅ Database setup complete!")
}
