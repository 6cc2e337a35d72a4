package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
	"store_service/internal/usecase"
)

type LogHandler struct {
	useCase usecase.LogUseCase
	log     *logrus.Logger
}

func NewLogHandler(uc usecase.LogUseCase, logger *logrus.Logger) *LogHandler {
	return &LogHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *LogHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/log", h.RecordLog)
	router.GET("/logs", h.ListLogs)
}

func (h *LogHandler) RecordLog(c *gin.Context) {
	var entry domain.LogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.log.Errorf("Failed to bind JSON for log entry: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.RecordLog(c.Request.Context(), &entry)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		if statusCode == http.StatusBadRequest {
			ErrorResponse(c, statusCode, "Missing required fields")
			return
		}
		ErrorResponse(c, statusCode, "Failed to record log: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Log recorded successfully", created)
}

func (h *LogHandler) ListLogs(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		h.log.Warnf("Invalid limit parameter '%s', using default 50", limitStr)
		limit = 50
	}

	entries, err := h.useCase.ListLogs(c.Request.Context(), limit)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve logs: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Logs retrieved successfully", entries)
}
