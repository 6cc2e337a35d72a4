package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store_service/internal/domain"
	"store_service/internal/sentiment"
)

func TestPredict_Scenario(t *testing.T) {
	labels := map[string]string{
		"I love this product": "positive",
		"Terrible service":    "negative",
	}
	r := newTestRouter(t, testDeps{
		classifier: domain.ClassifierFunc(func(_ context.Context, text string) (string, error) {
			return labels[text], nil
		}),
	})

	rec := doJSON(t, r, http.MethodPost, "/predict", map[string]string{"text": "I love this product"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"prediction": "positive",
		"positive_count": 1,
		"negative_count": 0,
		"recent_reviews": [{"text": "I love this product", "prediction": "positive"}]
	}`, rec.Body.String())

	rec = doJSON(t, r, http.MethodPost, "/predict", map[string]string{"text": "Terrible service"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"prediction": "negative",
		"positive_count": 1,
		"negative_count": 1,
		"recent_reviews": [
			{"text": "Terrible service", "prediction": "negative"},
			{"text": "I love this product", "prediction": "positive"}
		]
	}`, rec.Body.String())
}

func TestPredict_NoText(t *testing.T) {
	tracker := sentiment.NewTracker(0)
	r := newTestRouter(t, testDeps{tracker: tracker})

	for _, body := range []interface{}{
		map[string]string{"text": ""},
		map[string]string{"text": "   "},
		map[string]string{},
		nil,
	} {
		rec := doJSON(t, r, http.MethodPost, "/predict", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "No text provided"}`, rec.Body.String())
	}

	st := tracker.Stats()
	assert.Zero(t, st.PositiveCount+st.NegativeCount)
}

func TestPredict_MalformedBody(t *testing.T) {
	r := newTestRouter(t, testDeps{})

	rec := doJSON(t, r, http.MethodPost, "/predict", `{"text": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "No text provided"}`, rec.Body.String())
}

func TestPredict_ClassifierFailure(t *testing.T) {
	tracker := sentiment.NewTracker(0)
	r := newTestRouter(t, testDeps{
		tracker: tracker,
		classifier: domain.ClassifierFunc(func(context.Context, string) (string, error) {
			return "", errors.New("connection refused")
		}),
	})

	rec := doJSON(t, r, http.MethodPost, "/predict", map[string]string{"text": "hello"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error": "Prediction failed"}`, rec.Body.String())
	assert.Empty(t, tracker.Reviews())
}

func TestPredict_ReturnsOnlyFiveMostRecent(t *testing.T) {
	r := newTestRouter(t, testDeps{})

	var rec = doJSON(t, r, http.MethodPost, "/predict", map[string]string{"text": "review 1"})
	for i := 2; i <= 6; i++ {
		rec = doJSON(t, r, http.MethodPost, "/predict", map[string]string{"text": fmt.Sprintf("review %d", i)})
	}
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decode[domain.Summary](t, rec)
	assert.Equal(t, 6, summary.PositiveCount)
	require.Len(t, summary.RecentReviews, 5)
	assert.Equal(t, "review 6", summary.RecentReviews[0].Text)
	assert.Equal(t, "review 2", summary.RecentReviews[4].Text)
}

func TestPredictStats(t *testing.T) {
	tracker := sentiment.NewTracker(0)
	r := newTestRouter(t, testDeps{tracker: tracker})
	doJSON(t, r, http.MethodPost, "/predict", map[string]string{"text": "nice"})

	rec := doJSON(t, r, http.MethodGet, "/predict/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[sentiment.Stats](t, rec)
	assert.Equal(t, tracker.InstanceID(), stats.InstanceID)
	assert.Equal(t, 1, stats.PositiveCount)
	assert.Equal(t, 1, stats.Retained)
}
