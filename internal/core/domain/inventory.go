package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an inventory item. Stock is incremented only by purchase-order
// receipt in this backend.
type Product struct {
	ProductID   string          `json:"productID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // Sell price
	Cost        decimal.Decimal `json:"cost"`  // Unit cost
	Stock       int64           `json:"stock"`
	AuditFields
}

// PurchaseOrderStatus is the lifecycle state of a purchase order.
// Received and Cancelled are terminal; receiving is one-way.
type PurchaseOrderStatus string

const (
	PODraft     PurchaseOrderStatus = "DRAFT"
	POOrdered   PurchaseOrderStatus = "ORDERED"
	POReceived  PurchaseOrderStatus = "RECEIVED"
	POCancelled PurchaseOrderStatus = "CANCELLED"
)

// PurchaseOrderLine is one ordered product with quantity and unit cost.
type PurchaseOrderLine struct {
	LineID    string          `json:"lineID"` // Primary Key (UUID)
	ProductID string          `json:"productID"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// PurchaseOrder is an order placed with a supplier contact. PONumber is a
// human-readable per-company sequence of the form "PO-NNN".
type PurchaseOrder struct {
	PurchaseOrderID string              `json:"purchaseOrderID"` // Primary Key (UUID)
	CompanyID       string              `json:"companyID"`
	PONumber        string              `json:"poNumber"`
	SupplierID      string              `json:"supplierID"` // FK -> contacts
	OrderDate       time.Time           `json:"orderDate"`
	ExpectedDate    *time.Time          `json:"expectedDate"`
	Status          PurchaseOrderStatus `json:"status"`
	TotalCost       decimal.Decimal     `json:"totalCost"`
	Lines           []PurchaseOrderLine `json:"lines"`
	AuditFields
}
