package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
)

type postgresLogRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresLogRepository(db *sql.DB, logger *logrus.Logger) domain.LogRepository {
	return &postgresLogRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresLogRepository) CreateLog(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error) {
	query := `
        INSERT INTO logs (level, message, user_email, endpoint)
        VALUES ($1, $2, $3, $4)
        RETURNING id, timestamp`

	var email sql.NullString
	if entry.UserEmail != "" {
		email = sql.NullString{String: entry.UserEmail, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query, entry.Level, entry.Message, email, entry.Endpoint).Scan(&entry.ID, &entry.Timestamp)
	if err != nil {
		r.log.Errorf("Failed to write log entry for endpoint %s: %v", entry.Endpoint, err)
		return nil, fmt.Errorf("could not create log entry: %w", err)
	}
	return entry, nil
}

func (r *postgresLogRepository) ListRecentLogs(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	query := `
        SELECT id, timestamp, level, message, user_email, endpoint
        FROM logs
        ORDER BY id DESC
        LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.log.Errorf("Failed to list logs with limit %d: %v", limit, err)
		return nil, fmt.Errorf("could not list logs: %w", err)
	}
	defer rows.Close()

	entries := []domain.LogEntry{}
	for rows.Next() {
		var entry domain.LogEntry
		var email sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Level, &entry.Message, &email, &entry.Endpoint); err != nil {
			r.log.Errorf("Failed to scan log row: %v", err)
			return nil, fmt.Errorf("error scanning log data: %w", err)
		}
		entry.UserEmail = email.String
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during logs list iteration: %v", err)
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}
	return entries, nil
}
