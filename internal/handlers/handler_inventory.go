package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// inventoryHandler handles HTTP requests for products and purchase orders.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// registerInventoryRoutes registers routes for products and purchase orders.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.createPurchaseOrder)
		orders.GET("", h.listPurchaseOrders)
		orders.GET("/:id", h.getPurchaseOrder)
		orders.PUT("/:id", h.updatePurchaseOrder)
		orders.DELETE("/:id", h.deletePurchaseOrder)
		orders.POST("/:id/receive", h.receivePurchaseOrder)
	}
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "SKU already in use"
// @Security BearerAuth
// @Router /products [post]
func (h *inventoryHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Product")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

func (h *inventoryHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	products, err := h.inventoryService.ListProducts(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Product")
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: dto.ToProductResponses(products)})
}

func (h *inventoryHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	product, err := h.inventoryService.GetProductByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Updates product details. Stock cannot be set here; it changes only through purchase-order receipt
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *inventoryHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.inventoryService.UpdateProduct(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *inventoryHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.inventoryService.DeleteProduct(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Product")
		return
	}

	c.Status(http.StatusNoContent)
}

// createPurchaseOrder godoc
// @Summary Create a purchase order
// @Description Creates an order with a server-generated PO number and a total computed from its lines
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier or product not found"
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *inventoryHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	po, err := h.inventoryService.CreatePurchaseOrder(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Purchase order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(po))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce  json
// @Param   status query string false "Filter by status" Enums(DRAFT, ORDERED, RECEIVED, CANCELLED)
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *inventoryHandler) listPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	var status *domain.PurchaseOrderStatus
	if v := c.Query("status"); v != "" {
		s := domain.PurchaseOrderStatus(v)
		status = &s
	}

	orders, err := h.inventoryService.ListPurchaseOrders(c.Request.Context(), companyID, status, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Purchase order")
		return
	}

	resp := dto.ListPurchaseOrdersResponse{PurchaseOrders: make([]dto.PurchaseOrderResponse, len(orders))}
	for i, po := range orders {
		resp.PurchaseOrders[i] = dto.ToPurchaseOrderResponse(&po)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *inventoryHandler) getPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	po, err := h.inventoryService.GetPurchaseOrderByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Purchase order")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}

func (h *inventoryHandler) updatePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	po, err := h.inventoryService.UpdatePurchaseOrder(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Purchase order")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}

func (h *inventoryHandler) deletePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.inventoryService.DeletePurchaseOrder(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Purchase order")
		return
	}

	c.Status(http.StatusNoContent)
}

// receivePurchaseOrder godoc
// @Summary Receive a purchase order
// @Description Marks the order RECEIVED and increments the stock of its line products atomically. Products deleted since ordering are skipped and reported
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {object} dto.ReceivePurchaseOrderResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 409 {object} map[string]string "Order already received or cancelled"
// @Security BearerAuth
// @Router /purchase-orders/{id}/receive [post]
func (h *inventoryHandler) receivePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	po, products, missing, err := h.inventoryService.ReceivePurchaseOrder(c.Request.Context(), companyID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Purchase order")
		return
	}

	c.JSON(http.StatusOK, dto.ReceivePurchaseOrderResponse{
		PurchaseOrder:     dto.ToPurchaseOrderResponse(po),
		UpdatedProducts:   dto.ToProductResponses(products),
		MissingProductIDs: missing,
	})
}
