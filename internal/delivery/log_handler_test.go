package delivery

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store_service/internal/domain"
)

func TestRecordLog(t *testing.T) {
	logs := &mockLogUseCase{
		recordFn: func(_ context.Context, e *domain.LogEntry) (*domain.LogEntry, error) {
			if e.Message == "" {
				return nil, domain.NewValidationError(domain.ErrMissingFields)
			}
			out := *e
			out.ID = 11
			return &out, nil
		},
	}
	r := newTestRouter(t, testDeps{logs: logs})

	rec := doJSON(t, r, http.MethodPost, "/log", map[string]string{
		"level": "INFO", "message": "opened app", "endpoint": "/home",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 11, decode[envelope](t, rec).Data["id"])

	rec = doJSON(t, r, http.MethodPost, "/log", map[string]string{"level": "INFO"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decode[envelope](t, rec).Message)
}

func TestListLogs(t *testing.T) {
	var gotLimit int
	logs := &mockLogUseCase{
		listFn: func(_ context.Context, limit int) ([]domain.LogEntry, error) {
			gotLimit = limit
			return []domain.LogEntry{{ID: 1, Level: "INFO", Message: "m", Endpoint: "/x"}}, nil
		},
	}
	r := newTestRouter(t, testDeps{logs: logs})

	rec := doJSON(t, r, http.MethodGet, "/logs?limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, gotLimit)

	doJSON(t, r, http.MethodGet, "/logs?limit=bogus", nil)
	assert.Equal(t, 50, gotLimit)

	logs.listFn = func(context.Context, int) ([]domain.LogEntry, error) {
		return nil, errors.New("db down")
	}
	assert.Equal(t, http.StatusInternalServerError, doJSON(t, r, http.MethodGet, "/logs", nil).Code)
}
