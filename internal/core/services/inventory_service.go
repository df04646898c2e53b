package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/events"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// inventoryService manages products and purchase orders. Receiving a
// purchase order restocks its line products through a single repository
// transaction.
type inventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
	contactRepo   portsrepo.ContactRepositoryFacade
	publisher     events.Publisher
}

// NewInventoryService creates a new instance of inventoryService.
func NewInventoryService(
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	contactRepo portsrepo.ContactRepositoryFacade,
	publisher events.Publisher,
) portssvc.InventorySvcFacade {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		contactRepo:   contactRepo,
		publisher:     publisher,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// --- Products ---

func (s *inventoryService) GetProductByID(ctx context.Context, companyID string, productID string) (*domain.Product, error) {
	return s.inventoryRepo.FindProductByID(ctx, companyID, productID)
}

func (s *inventoryService) ListProducts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.inventoryRepo.ListProducts(ctx, companyID, limit, offset)
}

func (s *inventoryService) CreateProduct(ctx context.Context, companyID string, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: initial stock must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		CompanyID:   companyID,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.inventoryRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, companyID string, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.inventoryRepo.FindProductByID(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = userID

	if err := s.inventoryRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, companyID string, productID string, userID string) error {
	return s.inventoryRepo.DeleteProduct(ctx, companyID, productID)
}

// --- Purchase orders ---

func (s *inventoryService) GetPurchaseOrderByID(ctx context.Context, companyID string, poID string) (*domain.PurchaseOrder, error) {
	return s.inventoryRepo.FindPurchaseOrderByID(ctx, companyID, poID)
}

func (s *inventoryService) ListPurchaseOrders(ctx context.Context, companyID string, status *domain.PurchaseOrderStatus, limit int, offset int) ([]domain.PurchaseOrder, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.inventoryRepo.ListPurchaseOrders(ctx, companyID, status, limit, offset)
}

// CreatePurchaseOrder persists a new purchase order. The supplier must be a
// contact of the company, every line product must exist, and the total cost
// is the sum of quantity times unit cost across lines.
func (s *inventoryService) CreatePurchaseOrder(ctx context.Context, companyID string, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	if _, err := s.contactRepo.FindContactByID(ctx, companyID, req.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lines := make([]domain.PurchaseOrderLine, len(req.Lines))
	total := decimal.Zero
	for i, l := range req.Lines {
		if _, err := s.inventoryRepo.FindProductByID(ctx, companyID, l.ProductID); err != nil {
			return nil, err
		}
		lines[i] = domain.PurchaseOrderLine{
			LineID:    uuid.NewString(),
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
		}
		total = total.Add(l.UnitCost.Mul(decimal.NewFromInt(l.Quantity)))
	}

	status := domain.PODraft
	if req.Status != "" {
		status = domain.PurchaseOrderStatus(req.Status)
	}

	po := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		CompanyID:       companyID,
		SupplierID:      req.SupplierID,
		OrderDate:       req.OrderDate,
		ExpectedDate:    req.ExpectedDate,
		Status:          status,
		TotalCost:       total,
		Lines:           lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	return s.inventoryRepo.SavePurchaseOrder(ctx, po)
}

func (s *inventoryService) UpdatePurchaseOrder(ctx context.Context, companyID string, poID string, req dto.UpdatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	po, err := s.inventoryRepo.FindPurchaseOrderByID(ctx, companyID, poID)
	if err != nil {
		return nil, err
	}
	if po.Status == domain.POReceived || po.Status == domain.POCancelled {
		return nil, fmt.Errorf("%w: purchase order is already %s", apperrors.ErrConflict, po.Status)
	}

	if req.SupplierID != nil {
		if _, err := s.contactRepo.FindContactByID(ctx, companyID, *req.SupplierID); err != nil {
			return nil, err
		}
		po.SupplierID = *req.SupplierID
	}
	if req.OrderDate != nil {
		po.OrderDate = *req.OrderDate
	}
	if req.ExpectedDate != nil {
		po.ExpectedDate = req.ExpectedDate
	}
	if req.Status != nil {
		po.Status = domain.PurchaseOrderStatus(*req.Status)
	}

	replaceLines := len(req.Lines) > 0
	if replaceLines {
		lines := make([]domain.PurchaseOrderLine, len(req.Lines))
		total := decimal.Zero
		for i, l := range req.Lines {
			if _, err := s.inventoryRepo.FindProductByID(ctx, companyID, l.ProductID); err != nil {
				return nil, err
			}
			lines[i] = domain.PurchaseOrderLine{
				LineID:    uuid.NewString(),
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitCost:  l.UnitCost,
			}
			total = total.Add(l.UnitCost.Mul(decimal.NewFromInt(l.Quantity)))
		}
		po.Lines = lines
		po.TotalCost = total
	}
	po.LastUpdatedAt = time.Now().UTC()
	po.LastUpdatedBy = userID

	if err := s.inventoryRepo.UpdatePurchaseOrder(ctx, *po, replaceLines); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *inventoryService) DeletePurchaseOrder(ctx context.Context, companyID string, poID string, userID string) error {
	return s.inventoryRepo.DeletePurchaseOrder(ctx, companyID, poID)
}

// ReceivePurchaseOrder marks the order received and restocks its line
// products. Line products deleted since the order was placed are skipped and
// reported back to the caller.
func (s *inventoryService) ReceivePurchaseOrder(ctx context.Context, companyID string, poID string, userID string) (*domain.PurchaseOrder, []domain.Product, []string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	po, products, missing, err := s.inventoryRepo.ReceivePurchaseOrder(ctx, companyID, poID, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(missing) > 0 {
		logger.WarnContext(ctx, "purchase order received with missing products",
			slog.String("po_id", poID), slog.Int("missing_count", len(missing)))
	}

	if pubErr := s.publisher.Publish(ctx, events.PurchaseOrderReceived, po); pubErr != nil {
		logger.WarnContext(ctx, "failed to publish purchase order received event", slog.String("po_id", poID), slog.String("error", pubErr.Error()))
	}

	return po, products, missing, nil
}
