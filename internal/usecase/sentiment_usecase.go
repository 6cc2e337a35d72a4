package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
	"store_service/internal/sentiment"
)

// PredictionObserver is notified of every successful classification.
type PredictionObserver interface {
	ObservePrediction(label string)
}

type SentimentUseCase interface {
	Predict(ctx context.Context, text string) (*domain.Summary, error)
	Stats() sentiment.Stats
}

type sentimentUseCase struct {
	tracker    *sentiment.Tracker
	classifier domain.Classifier
	observer   PredictionObserver
	log        *logrus.Logger
}

func NewSentimentUseCase(tracker *sentiment.Tracker, classifier domain.Classifier, observer PredictionObserver, logger *logrus.Logger) SentimentUseCase {
	return &sentimentUseCase{
		tracker:    tracker,
		classifier: classifier,
		observer:   observer,
		log:        logger,
	}
}

func (uc *sentimentUseCase) Predict(ctx context.Context, text string) (*domain.Summary, error) {
	summary, err := uc.tracker.RecordAndSummarize(ctx, text, uc.classifier)
	if err != nil {
		if domain.IsValidation(err) {
			uc.log.Warn("Use Case: Prediction rejected - no text provided")
		} else {
			uc.log.Errorf("Use Case: Prediction failed: %v", err)
		}
		return nil, err
	}

	if uc.observer != nil {
		uc.observer.ObservePrediction(summary.Prediction)
	}
	uc.log.WithFields(logrus.Fields{
		"prediction":     summary.Prediction,
		"positive_count": summary.PositiveCount,
		"negative_count": summary.NegativeCount,
	}).Info("Use Case: Review classified")
	return summary, nil
}

func (uc *sentimentUseCase) Stats() sentiment.Stats {
	return uc.tracker.Stats()
}
