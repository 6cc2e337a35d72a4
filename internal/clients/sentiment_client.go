package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
)

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Prediction string `json:"prediction"`
}

// sentimentHTTPClient calls the external helper service that runs
// preprocessing, vectorization and prediction for a review.
type sentimentHTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewSentimentHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) domain.Classifier {
	return &sentimentHTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *sentimentHTTPClient) Classify(ctx context.Context, text string) (string, error) {
	url := c.baseURL + "/predict"

	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		c.log.Errorf("SentimentClient: Failed to marshal predict request: %v", err)
		return "", fmt.Errorf("failed to prepare classifier request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Errorf("SentimentClient: Failed to create predict request: %v", err)
		return "", fmt.Errorf("failed to create classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("SentimentClient: Failed to execute predict request to %s: %v", url, err)
		return "", fmt.Errorf("failed to communicate with classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Errorf("SentimentClient: Predict request failed with status %d. Response body: %s", resp.StatusCode, string(bodyBytes))
		return "", fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Errorf("SentimentClient: Failed to decode predict response: %v", err)
		return "", fmt.Errorf("failed to decode classifier response: %w", err)
	}
	if out.Prediction == "" {
		c.log.Error("SentimentClient: Classifier response carried no prediction")
		return "", fmt.Errorf("classifier returned an empty prediction")
	}

	c.log.WithFields(logrus.Fields{
		"prediction": out.Prediction,
		"latency_ms": time.Since(start).Milliseconds(),
	}).Debug("SentimentClient: Review classified")
	return out.Prediction, nil
}
