package delivery

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
	"store_service/internal/usecase"
)

type predictRequest struct {
	Text string `json:"text"`
}

type errorBody struct {
	Error string `json:"error"`
}

// PredictHandler serves the sentiment endpoints. Unlike the CRUD handlers it
// answers with bare JSON bodies rather than the Response envelope.
type PredictHandler struct {
	useCase usecase.SentimentUseCase
	limiter gin.HandlerFunc
	log     *logrus.Logger
}

// NewPredictHandler wires the sentiment use case. limiter may be nil.
func NewPredictHandler(uc usecase.SentimentUseCase, limiter gin.HandlerFunc, logger *logrus.Logger) *PredictHandler {
	return &PredictHandler{
		useCase: uc,
		limiter: limiter,
		log:     logger,
	}
}

func (h *PredictHandler) RegisterRoutes(router gin.IRouter) {
	predict := router.Group("/predict")
	if h.limiter != nil {
		predict.POST("", h.limiter, h.Predict)
	} else {
		predict.POST("", h.Predict)
	}
	predict.GET("/stats", h.Stats)
}

func (h *PredictHandler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warnf("Failed to bind JSON for predict: %v", err)
		c.JSON(http.StatusBadRequest, errorBody{Error: "No text provided"})
		return
	}

	summary, err := h.useCase.Predict(c.Request.Context(), req.Text)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, errorBody{Error: "No text provided"})
			return
		}
		h.log.Errorf("Prediction failed: %v", err)
		c.JSON(http.StatusBadGateway, errorBody{Error: "Prediction failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *PredictHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.Stats())
}
