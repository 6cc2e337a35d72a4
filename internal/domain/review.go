package domain

import "context"

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
)

type ReviewRecord struct {
	Text       string `json:"text"`
	Prediction string `json:"prediction"`
}

type Summary struct {
	Prediction    string         `json:"prediction"`
	PositiveCount int            `json:"positive_count"`
	NegativeCount int            `json:"negative_count"`
	RecentReviews []ReviewRecord `json:"recent_reviews"`
}

// Classifier maps review text to a sentiment label. Only "negative" is
// treated as negative; every other label counts as positive.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

type ClassifierFunc func(ctx context.Context, text string) (string, error)

func (f ClassifierFunc) Classify(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
