package delivery

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
	"store_service/internal/usecase"
)

type StoreHandler struct {
	useCase usecase.StoreUseCase
	audit   usecase.LogUseCase
	log     *logrus.Logger
}

// NewStoreHandler wires the store endpoints. audit receives a log row for
// registrations rejected before they reach the use case.
func NewStoreHandler(uc usecase.StoreUseCase, audit usecase.LogUseCase, logger *logrus.Logger) *StoreHandler {
	return &StoreHandler{
		useCase: uc,
		audit:   audit,
		log:     logger,
	}
}

func (h *StoreHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/register", h.RegisterStore)
	router.POST("/login", h.Login)

	stores := router.Group("/store")
	{
		stores.GET("/:id", h.GetStore)
		stores.PUT("/:id", h.UpdateStore)
		stores.DELETE("/:id", h.DeleteStore)
	}
}

func (h *StoreHandler) RegisterStore(c *gin.Context) {
	var reg domain.StoreRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		h.log.Errorf("Failed to bind JSON for store registration: %v", err)
		h.audit.Audit(c.Request.Context(), domain.LogLevelError, "Missing required fields", strings.ToLower(strings.TrimSpace(reg.Email)), "/register")
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	store, err := h.useCase.RegisterStore(c.Request.Context(), &reg)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to register store '%s': %v", reg.StoreName, err)
		if statusCode == http.StatusInternalServerError {
			ErrorResponse(c, statusCode, "Database error")
			return
		}
		ErrorResponse(c, statusCode, "Failed to register store: "+err.Error())
		return
	}

	h.log.Infof("Store registered successfully: ID %d, Email %s", store.ID, store.Email)
	SuccessResponse(c, http.StatusCreated, "Store registered successfully", store)
}

func (h *StoreHandler) Login(c *gin.Context) {
	var creds domain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		h.log.Errorf("Failed to bind JSON for login: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	store, err := h.useCase.Login(c.Request.Context(), creds)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Login failed for %s: %v", creds.Email, err)
		switch statusCode {
		case http.StatusUnauthorized:
			ErrorResponse(c, statusCode, "Invalid credentials")
		case http.StatusBadRequest:
			ErrorResponse(c, statusCode, "Email and password are required")
		default:
			ErrorResponse(c, statusCode, "Login failed: "+err.Error())
		}
		return
	}

	SuccessResponse(c, http.StatusOK, "Login successful", store)
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	id, ok := h.storeID(c)
	if !ok {
		return
	}

	store, err := h.useCase.GetStore(c.Request.Context(), id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to get store by ID %d: %v", id, err)
		if statusCode == http.StatusNotFound {
			ErrorResponse(c, statusCode, "Store not found")
			return
		}
		ErrorResponse(c, statusCode, "Failed to retrieve store: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Store retrieved successfully", store)
}

func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id, ok := h.storeID(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.log.Errorf("Failed to bind JSON for update store ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(updates) == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: no fields provided for update")
		return
	}

	store, err := h.useCase.UpdateStore(c.Request.Context(), id, updates)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update store ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to update store: "+err.Error())
		return
	}

	h.log.Infof("Store updated successfully: ID %d", store.ID)
	SuccessResponse(c, http.StatusOK, "Store updated successfully", store)
}

func (h *StoreHandler) DeleteStore(c *gin.Context) {
	id, ok := h.storeID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteStore(c.Request.Context(), id); err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to delete store ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to delete store: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Store deleted successfully", nil)
}

func (h *StoreHandler) storeID(c *gin.Context) (int, bool) {
	return parseID(c, h.log, "id", "store")
}

// parseID reads a positive integer path parameter and answers 400 otherwise.
func parseID(c *gin.Context, log *logrus.Logger, param, what string) (int, bool) {
	idStr := c.Param(param)
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Warnf("Invalid %s ID parameter: %s", what, idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+what+" ID format")
		return 0, false
	}
	return id, true
}
