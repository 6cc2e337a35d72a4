package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store_service/config"
	"store_service/internal/clients"
	"store_service/internal/delivery"
	"store_service/internal/metrics"
	"store_service/internal/middleware"
	"store_service/internal/repository"
	"store_service/internal/sentiment"
	"store_service/internal/usecase"
	"store_service/pkg/db"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	//  Configuration and Logging Setup
	cfg := config.LoadConfig(logger)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logger.Warnf("Unknown log level '%s', keeping info", cfg.LogLevel)
	} else {
		logger.SetLevel(level)
	}
	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Store Service...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	if cfg.EnsureSchema {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := db.EnsureSchema(ctx, database)
		cancel()
		if err != nil {
			logger.Fatalf("Failed to ensure database schema: %v", err)
		}
		logger.Info("Database schema ensured.")
	}

	// --- Dependency Injection ---
	// Repository Layer
	storeRepo := repository.NewPostgresStoreRepository(database, logger)
	productRepo := repository.NewPostgresProductRepository(database, logger)
	logRepo := repository.NewPostgresLogRepository(database, logger)
	logger.Info("Repositories initialized.")

	promMetrics := metrics.New()
	tracker := sentiment.NewTracker(cfg.ReviewHistoryLimit)
	classifier := clients.NewSentimentHTTPClient(cfg.ClassifierURL, cfg.ClassifierTimeout, logger)
	logger.WithField("instance_id", tracker.InstanceID()).Info("Review tally initialized.")

	// Usecase Layer
	logUseCase := usecase.NewLogUseCase(logRepo, logger)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, logUseCase, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, storeRepo, logger)
	sentimentUseCase := usecase.NewSentimentUseCase(tracker, classifier, promMetrics, logger)
	logger.Info("Use cases initialized.")

	router := delivery.NewRouter(delivery.RouterDeps{
		Stores:         storeUseCase,
		Products:       productUseCase,
		Logs:           logUseCase,
		Sentiment:      sentimentUseCase,
		DB:             database,
		Metrics:        promMetrics,
		PredictLimiter: middleware.RateLimit(cfg.PredictRateLimit, cfg.PredictRateBurst, logger),
		Logger:         logger,
	})
	logger.Info("API Routes registered.")

	//  Start Server
	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
