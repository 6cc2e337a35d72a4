package domain

import (
	"context"
	"time"
)

// LogEntry is a row of the logs table.
type LogEntry struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	UserEmail string    `json:"user_email,omitempty"`
	Endpoint  string    `json:"endpoint"`
}

const (
	LogLevelInfo  = "INFO"
	LogLevelError = "ERROR"
)

type LogRepository interface {
	CreateLog(ctx context.Context, entry *LogEntry) (*LogEntry, error)
	ListRecentLogs(ctx context.Context, limit int) ([]LogEntry, error)
}
