package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func Connect(databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	err = db.Ping()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS stores (
        id                SERIAL PRIMARY KEY,
        store_name        TEXT NOT NULL,
        store_type        TEXT NOT NULL,
        store_description TEXT,
        contact_number    TEXT NOT NULL,
        email             TEXT NOT NULL UNIQUE,
        password          TEXT NOT NULL,
        latitude          DOUBLE PRECISION NOT NULL,
        longitude         DOUBLE PRECISION NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS logs (
        id         SERIAL PRIMARY KEY,
        timestamp  TIMESTAMPTZ NOT NULL DEFAULT now(),
        level      TEXT NOT NULL,
        message    TEXT NOT NULL,
        user_email TEXT,
        endpoint   TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS products (
        id       SERIAL PRIMARY KEY,
        store_id INTEGER NOT NULL REFERENCES stores (id) ON DELETE CASCADE,
        name     TEXT NOT NULL,
        price    DOUBLE PRECISION NOT NULL CHECK (price > 0),
        stock    BOOLEAN NOT NULL DEFAULT TRUE
    )`,
}

// EnsureSchema creates the stores, logs and products tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
