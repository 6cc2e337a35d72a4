package sentiment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"store_service/internal/domain"
)

// RecentLimit is the number of reviews returned with every summary.
const RecentLimit = 5

// Stats is a read-only view of the tracker.
type Stats struct {
	InstanceID    string                `json:"instance_id"`
	PositiveCount int                   `json:"positive_count"`
	NegativeCount int                   `json:"negative_count"`
	Retained      int                   `json:"retained_reviews"`
	RecentReviews []domain.ReviewRecord `json:"recent_reviews"`
}

// Tracker counts classified reviews and keeps them in arrival order.
// reviews is stored oldest first; readers reverse it.
type Tracker struct {
	mu         sync.Mutex
	positive   int
	negative   int
	reviews    []domain.ReviewRecord
	limit      int
	instanceID string
}

// NewTracker returns an empty tracker. historyLimit caps the number of
// retained reviews; zero or less keeps every review.
func NewTracker(historyLimit int) *Tracker {
	if historyLimit < 0 {
		historyLimit = 0
	}
	return &Tracker{
		limit:      historyLimit,
		instanceID: uuid.NewString(),
	}
}

// RecordAndSummarize classifies text, counts the result and returns the
// updated tally. Whitespace-only text is rejected before the classifier runs.
// A classifier error leaves the tally untouched.
func (t *Tracker) RecordAndSummarize(ctx context.Context, text string, classifier domain.Classifier) (*domain.Summary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError(domain.ErrNoTextProvided)
	}

	prediction, err := classifier.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("classify review: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if prediction == domain.LabelNegative {
		t.negative++
	} else {
		t.positive++
	}
	t.append(domain.ReviewRecord{Text: text, Prediction: prediction})

	return &domain.Summary{
		Prediction:    prediction,
		PositiveCount: t.positive,
		NegativeCount: t.negative,
		RecentReviews: t.recent(RecentLimit),
	}, nil
}

// Stats returns the current counts and the most recent reviews.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		InstanceID:    t.instanceID,
		PositiveCount: t.positive,
		NegativeCount: t.negative,
		Retained:      len(t.reviews),
		RecentReviews: t.recent(RecentLimit),
	}
}

// Reviews returns every retained review, most recent first.
func (t *Tracker) Reviews() []domain.ReviewRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recent(len(t.reviews))
}

// InstanceID identifies the process that owns this tally.
func (t *Tracker) InstanceID() string {
	return t.instanceID
}

func (t *Tracker) append(r domain.ReviewRecord) {
	if t.limit > 0 && len(t.reviews) == t.limit {
		copy(t.reviews, t.reviews[1:])
		t.reviews[len(t.reviews)-1] = r
		return
	}
	t.reviews = append(t.reviews, r)
}

// recent copies up to n reviews, newest first. Callers hold t.mu.
func (t *Tracker) recent(n int) []domain.ReviewRecord {
	if n > len(t.reviews) {
		n = len(t.reviews)
	}
	out := make([]domain.ReviewRecord, 0, n)
	for i := len(t.reviews) - 1; i >= len(t.reviews)-n; i-- {
		out = append(out, t.reviews[i])
	}
	return out
}
