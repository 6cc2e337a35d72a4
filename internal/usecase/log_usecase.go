package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
)

type LogUseCase interface {
	RecordLog(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error)
	ListLogs(ctx context.Context, limit int) ([]domain.LogEntry, error)
	// Audit writes an entry on a best-effort basis. Failures are only logged.
	Audit(ctx context.Context, level, message, userEmail, endpoint string)
}

type logUseCase struct {
	logRepo domain.LogRepository
	log     *logrus.Logger
}

func NewLogUseCase(repo domain.LogRepository, logger *logrus.Logger) LogUseCase {
	return &logUseCase{
		logRepo: repo,
		log:     logger,
	}
}

func (uc *logUseCase) RecordLog(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error) {
	entry.Level = strings.TrimSpace(entry.Level)
	entry.Message = strings.TrimSpace(entry.Message)
	entry.Endpoint = strings.TrimSpace(entry.Endpoint)
	if entry.Level == "" || entry.Message == "" || entry.Endpoint == "" {
		uc.log.Warn("Use Case: Log entry rejected - level, message and endpoint are required")
		return nil, domain.NewValidationError(errors.New("missing required fields: level, message and endpoint are required"))
	}

	created, err := uc.logRepo.CreateLog(ctx, entry)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to record log entry: %v", err)
		return nil, err
	}
	return created, nil
}

func (uc *logUseCase) ListLogs(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	entries, err := uc.logRepo.ListRecentLogs(ctx, limit)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list logs: %v", err)
		return nil, err
	}
	return entries, nil
}

func (uc *logUseCase) Audit(ctx context.Context, level, message, userEmail, endpoint string) {
	_, err := uc.logRepo.CreateLog(ctx, &domain.LogEntry{
		Level:     level,
		Message:   message,
		UserEmail: userEmail,
		Endpoint:  endpoint,
	})
	if err != nil {
		uc.log.WithFields(logrus.Fields{
			"level":    level,
			"endpoint": endpoint,
		}).Errorf("Use Case: Failed to write audit log: %v", err)
	}
}
