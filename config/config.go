package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL        string        `envconfig:"DATABASE_URL"         required:"true"`
	HTTPPort           string        `envconfig:"HTTP_PORT"            default:":5001"`
	LogLevel           string        `envconfig:"LOG_LEVEL"            default:"info"`
	EnsureSchema       bool          `envconfig:"ENSURE_SCHEMA"        default:"true"`
	ClassifierURL      string        `envconfig:"CLASSIFIER_URL"       default:"http://localhost:5000"`
	ClassifierTimeout  time.Duration `envconfig:"CLASSIFIER_TIMEOUT"   default:"10s"`
	ReviewHistoryLimit int           `envconfig:"REVIEW_HISTORY_LIMIT" default:"0"` // 0 keeps every review
	PredictRateLimit   float64       `envconfig:"PREDICT_RATE_LIMIT"   default:"0"` // requests per second, 0 disables
	PredictRateBurst   int           `envconfig:"PREDICT_RATE_BURST"   default:"5"`
}

var (
	config Config
	once   sync.Once
)

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads the configuration once per process and exits on failure.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logger.Fatalf("Failed to process configuration: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, LogLevel=%s, Classifier=%s", config.HTTPPort, config.LogLevel, config.ClassifierURL)
		if config.ReviewHistoryLimit > 0 {
			logger.Infof("Configuration loaded: review history capped at %d entries", config.ReviewHistoryLimit)
		}
	})
	return &config
}
