package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
	"store_service/internal/usecase"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	stores := router.Group("/store/:id")
	{
		stores.POST("/add-product", h.AddProduct)
		stores.POST("/products", h.AddProduct)
		stores.GET("/products", h.ListProducts)
		stores.DELETE("/products/:productId", h.DeleteProduct)
	}
}

func (h *ProductHandler) AddProduct(c *gin.Context) {
	storeID, ok := parseID(c, h.log, "id", "store")
	if !ok {
		return
	}

	var in domain.NewProduct
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.Errorf("Failed to bind JSON for add product to store %d: %v", storeID, err)
		if domain.IsValidation(err) {
			ErrorResponse(c, http.StatusBadRequest, "Failed to add product: "+err.Error())
			return
		}
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.useCase.AddProduct(c.Request.Context(), storeID, &in)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to add product '%s' to store %d: %v", in.Name, storeID, err)
		ErrorResponse(c, statusCode, "Failed to add product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	storeID, ok := parseID(c, h.log, "id", "store")
	if !ok {
		return
	}

	products, err := h.useCase.ListProducts(c.Request.Context(), storeID)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list products for store %d: %v", storeID, err)
		ErrorResponse(c, statusCode, "Failed to retrieve products: "+err.Error())
		return
	}

	if len(products) == 0 {
		SuccessResponse(c, http.StatusOK, "No products found", []domain.Product{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	storeID, ok := parseID(c, h.log, "id", "store")
	if !ok {
		return
	}
	productID, ok := parseID(c, h.log, "productId", "product")
	if !ok {
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), storeID, productID); err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to delete product %d of store %d: %v", productID, storeID, err)
		ErrorResponse(c, statusCode, "Failed to delete product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}
