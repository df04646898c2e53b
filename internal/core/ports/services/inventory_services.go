package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// ProductSvc defines operations for product data
type ProductSvc interface {
	// GetProductByID retrieves a specific product by its unique identifier.
	GetProductByID(ctx context.Context, companyID string, productID string) (*domain.Product, error)

	// ListProducts retrieves the products of a company.
	ListProducts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Product, error)

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, companyID string, req dto.CreateProductRequest, userID string) (*domain.Product, error)

	// UpdateProduct updates an existing product's details. Stock is excluded;
	// it changes only through purchase-order receipt.
	UpdateProduct(ctx context.Context, companyID string, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)

	// DeleteProduct removes a product from a company.
	DeleteProduct(ctx context.Context, companyID string, productID string, userID string) error
}

// PurchaseOrderSvc defines operations for purchase order data
type PurchaseOrderSvc interface {
	// GetPurchaseOrderByID retrieves a specific purchase order by its unique identifier.
	GetPurchaseOrderByID(ctx context.Context, companyID string, poID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves the purchase orders of a company,
	// optionally filtered by status.
	ListPurchaseOrders(ctx context.Context, companyID string, status *domain.PurchaseOrderStatus, limit int, offset int) ([]domain.PurchaseOrder, error)

	// CreatePurchaseOrder persists a new purchase order with a generated PO
	// number and a total computed from its lines.
	CreatePurchaseOrder(ctx context.Context, companyID string, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)

	// UpdatePurchaseOrder updates an order that is not yet received or cancelled.
	UpdatePurchaseOrder(ctx context.Context, companyID string, poID string, req dto.UpdatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)

	// DeletePurchaseOrder removes a purchase order from a company.
	DeletePurchaseOrder(ctx context.Context, companyID string, poID string, userID string) error

	// ReceivePurchaseOrder marks an order received and restocks its line
	// products. It returns the received order, the updated products, and the
	// ids of line products that no longer exist.
	ReceivePurchaseOrder(ctx context.Context, companyID string, poID string, userID string) (*domain.PurchaseOrder, []domain.Product, []string, error)
}

// InventorySvcFacade combines product and purchase order service interfaces
type InventorySvcFacade interface {
	ProductSvc
	PurchaseOrderSvc
}
