package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the payload for creating a product.
type CreateProductRequest struct {
	SKU         string          `json:"sku" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int64           `json:"stock"`
}

// UpdateProductRequest defines the payload for updating a product.
// Stock is deliberately absent: it is mutated only by purchase-order receipt.
type UpdateProductRequest struct {
	SKU         *string          `json:"sku"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
}

// ProductResponse defines the product data returned by the API.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int64           `json:"stock"`
}

// ListProductsResponse wraps a list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain.Product to a ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(ps []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(ps))
	for i, p := range ps {
		responses[i] = ToProductResponse(&p)
	}
	return responses
}

// PurchaseOrderLineRequest is one line of a purchase-order create/update.
type PurchaseOrderLineRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// CreatePurchaseOrderRequest defines the payload for creating a purchase
// order. The PO number ("PO-NNN") is generated server-side.
type CreatePurchaseOrderRequest struct {
	SupplierID   string                     `json:"supplierID" binding:"required"`
	OrderDate    time.Time                  `json:"orderDate" binding:"required"`
	ExpectedDate *time.Time                 `json:"expectedDate"`
	Status       string                     `json:"status" binding:"omitempty,oneof=DRAFT ORDERED"`
	Lines        []PurchaseOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdatePurchaseOrderRequest defines the payload for updating a purchase
// order. Status transitions to RECEIVED go through the receive operation,
// never through update.
type UpdatePurchaseOrderRequest struct {
	SupplierID   *string                    `json:"supplierID"`
	OrderDate    *time.Time                 `json:"orderDate"`
	ExpectedDate *time.Time                 `json:"expectedDate"`
	Status       *string                    `json:"status" binding:"omitempty,oneof=DRAFT ORDERED CANCELLED"`
	Lines        []PurchaseOrderLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
}

// PurchaseOrderLineResponse is one line of a purchase order.
type PurchaseOrderLineResponse struct {
	LineID    string          `json:"lineID"`
	ProductID string          `json:"productID"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// PurchaseOrderResponse defines the purchase-order data returned by the API.
type PurchaseOrderResponse struct {
	PurchaseOrderID string                      `json:"purchaseOrderID"`
	PONumber        string                      `json:"poNumber"`
	SupplierID      string                      `json:"supplierID"`
	OrderDate       time.Time                   `json:"orderDate"`
	ExpectedDate    *time.Time                  `json:"expectedDate"`
	Status          string                      `json:"status"`
	TotalCost       decimal.Decimal             `json:"totalCost"`
	Lines           []PurchaseOrderLineResponse `json:"lines"`
}

// ListPurchaseOrdersResponse wraps a list of purchase orders.
type ListPurchaseOrdersResponse struct {
	PurchaseOrders []PurchaseOrderResponse `json:"purchaseOrders"`
}

// ReceivePurchaseOrderResponse returns the received order, the products whose
// stock was incremented, and the ids of line-item products that no longer
// exist (skipped, but reported rather than silently swallowed).
type ReceivePurchaseOrderResponse struct {
	PurchaseOrder     PurchaseOrderResponse `json:"purchaseOrder"`
	UpdatedProducts   []ProductResponse     `json:"updatedProducts"`
	MissingProductIDs []string              `json:"missingProductIDs,omitempty"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to its DTO.
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, len(po.Lines))
	for i, l := range po.Lines {
		lines[i] = PurchaseOrderLineResponse{
			LineID:    l.LineID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
		}
	}
	return PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		PONumber:        po.PONumber,
		SupplierID:      po.SupplierID,
		OrderDate:       po.OrderDate,
		ExpectedDate:    po.ExpectedDate,
		Status:          string(po.Status),
		TotalCost:       po.TotalCost,
		Lines:           lines,
	}
}
