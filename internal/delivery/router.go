package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store_service/internal/metrics"
	"store_service/internal/middleware"
	"store_service/internal/usecase"
)

type RouterDeps struct {
	Stores         usecase.StoreUseCase
	Products       usecase.ProductUseCase
	Logs           usecase.LogUseCase
	Sentiment      usecase.SentimentUseCase
	DB             Pinger
	Metrics        *metrics.Metrics
	PredictLimiter gin.HandlerFunc
	Logger         *logrus.Logger
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	if d.Metrics != nil {
		router.Use(middleware.RequestLogger(d.Logger, d.Metrics))
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	} else {
		router.Use(middleware.RequestLogger(d.Logger, nil))
	}

	router.GET("/", serveIndexPage)

	NewHealthHandler(d.DB, d.Logger).RegisterRoutes(router)
	NewStoreHandler(d.Stores, d.Logs, d.Logger).RegisterRoutes(router)
	NewProductHandler(d.Products, d.Logger).RegisterRoutes(router)
	NewLogHandler(d.Logs, d.Logger).RegisterRoutes(router)
	NewPredictHandler(d.Sentiment, d.PredictLimiter, d.Logger).RegisterRoutes(router)

	return router
}
