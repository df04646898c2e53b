package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product within a company by its unique identifier.
	FindProductByID(ctx context.Context, companyID string, productID string) (*domain.Product, error)

	// ListProducts retrieves the products of a company ordered by SKU.
	ListProducts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's details. Stock is not
	// touched here; it changes only through purchase-order receipt.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product from a company.
	DeleteProduct(ctx context.Context, companyID string, productID string) error
}

// PurchaseOrderReader defines read operations for purchase order data
type PurchaseOrderReader interface {
	// FindPurchaseOrderByID retrieves a purchase order and its lines within a
	// company by its unique identifier.
	FindPurchaseOrderByID(ctx context.Context, companyID string, poID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves the purchase orders of a company ordered by
	// order date descending, optionally filtered by status.
	ListPurchaseOrders(ctx context.Context, companyID string, status *domain.PurchaseOrderStatus, limit int, offset int) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriter defines write operations for purchase order data
type PurchaseOrderWriter interface {
	// SavePurchaseOrder persists a new purchase order and its lines,
	// assigning the next PO number ("PO-001" style) from the company's
	// sequence. It returns the stored order.
	SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error)

	// UpdatePurchaseOrder updates an order's details, replacing its lines
	// when new ones are given. Orders already RECEIVED or CANCELLED result
	// in apperrors.ErrConflict.
	UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder, replaceLines bool) error

	// DeletePurchaseOrder removes a purchase order and its lines.
	DeletePurchaseOrder(ctx context.Context, companyID string, poID string) error

	// ReceivePurchaseOrder marks an order RECEIVED and increments the stock
	// of each line's product, all within a single database transaction. An
	// order already RECEIVED or CANCELLED results in apperrors.ErrConflict.
	// Line products that no longer exist are skipped; their ids are returned
	// alongside the updated order and products.
	ReceivePurchaseOrder(ctx context.Context, companyID string, poID string, updatedBy string) (*domain.PurchaseOrder, []domain.Product, []string, error)
}

// InventoryRepositoryFacade combines product and purchase order repository interfaces
type InventoryRepositoryFacade interface {
	ProductReader
	ProductWriter
	PurchaseOrderReader
	PurchaseOrderWriter
}
