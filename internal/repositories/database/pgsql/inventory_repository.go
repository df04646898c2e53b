package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/utils"
)

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

// --- Products ---

const productColumns = `product_id, company_id, sku, name, description, price, cost, stock,
       created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ProductID,
		&p.CompanyID,
		&p.SKU,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Cost,
		&p.Stock,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxInventoryRepository) FindProductByID(ctx context.Context, companyID string, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 AND company_id = $2;`
	product, err := scanProduct(r.Pool.QueryRow(ctx, query, productID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by ID "+productID, err)
	}
	return product, nil
}

func (r *PgxInventoryRepository) ListProducts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + productColumns + ` FROM products
		WHERE company_id = $1
		ORDER BY sku
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products for company "+companyID, err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return products, nil
}

func (r *PgxInventoryRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, company_id, sku, name, description, price, cost, stock,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.CompanyID,
		product.SKU,
		product.Name,
		product.Description,
		product.Price,
		product.Cost,
		product.Stock,
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save product", err)
	}
	return nil
}

func (r *PgxInventoryRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET sku = $3,
		    name = $4,
		    description = $5,
		    price = $6,
		    cost = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE product_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.CompanyID,
		product.SKU,
		product.Name,
		product.Description,
		product.Price,
		product.Cost,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update product "+product.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + product.ProductID + " not found for update")
	}
	return nil
}

func (r *PgxInventoryRepository) DeleteProduct(ctx context.Context, companyID string, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, productID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete product "+productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + productID + " not found for delete")
	}
	return nil
}

// --- Purchase orders ---

const purchaseOrderColumns = `po_id, company_id, po_number, supplier_id, order_date, expected_date, status, total_cost,
       created_at, created_by, last_updated_at, last_updated_by`

func scanPurchaseOrder(row pgx.Row) (*domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := row.Scan(
		&po.PurchaseOrderID,
		&po.CompanyID,
		&po.PONumber,
		&po.SupplierID,
		&po.OrderDate,
		&po.ExpectedDate,
		&po.Status,
		&po.TotalCost,
		&po.CreatedAt,
		&po.CreatedBy,
		&po.LastUpdatedAt,
		&po.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *PgxInventoryRepository) FindPurchaseOrderByID(ctx context.Context, companyID string, poID string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE po_id = $1 AND company_id = $2;`
	po, err := scanPurchaseOrder(r.Pool.QueryRow(ctx, query, poID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase order by ID "+poID, err)
	}

	lines, err := r.findPurchaseOrderLines(ctx, poID)
	if err != nil {
		return nil, err
	}
	po.Lines = lines
	return po, nil
}

func (r *PgxInventoryRepository) findPurchaseOrderLines(ctx context.Context, poID string) ([]domain.PurchaseOrderLine, error) {
	query := `
		SELECT line_id, product_id, quantity, unit_cost
		FROM purchase_order_lines
		WHERE po_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, poID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for purchase order "+poID, err)
	}
	defer rows.Close()

	lines := []domain.PurchaseOrderLine{}
	for rows.Next() {
		var l domain.PurchaseOrderLine
		if err := rows.Scan(&l.LineID, &l.ProductID, &l.Quantity, &l.UnitCost); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase order line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase order lines", err)
	}
	return lines, nil
}

func (r *PgxInventoryRepository) ListPurchaseOrders(ctx context.Context, companyID string, status *domain.PurchaseOrderStatus, limit int, offset int) ([]domain.PurchaseOrder, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE company_id = $1`
	args := []any{companyID}
	if status != nil {
		query += ` AND status = $2 ORDER BY order_date DESC LIMIT $3 OFFSET $4;`
		args = append(args, *status, limit, offset)
	} else {
		query += ` ORDER BY order_date DESC LIMIT $2 OFFSET $3;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchase orders for company "+companyID, err)
	}
	defer rows.Close()

	orders := []domain.PurchaseOrder{}
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase order row", err)
		}
		orders = append(orders, *po)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase order rows", err)
	}

	for i := range orders {
		lines, err := r.findPurchaseOrderLines(ctx, orders[i].PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

// SavePurchaseOrder inserts the order and its lines, minting the PO number
// from the company's sequence inside the same database transaction.
func (r *PgxInventoryRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	seq, err := nextSequenceNumber(ctx, tx, po.CompanyID, "purchase_order")
	if err != nil {
		return nil, err
	}
	po.PONumber = utils.FormatSequenceNumber("PO", seq)

	headerQuery := `
		INSERT INTO purchase_orders (po_id, company_id, po_number, supplier_id, order_date, expected_date, status, total_cost,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, headerQuery,
		po.PurchaseOrderID,
		po.CompanyID,
		po.PONumber,
		po.SupplierID,
		po.OrderDate,
		po.ExpectedDate,
		po.Status,
		po.TotalCost,
		po.CreatedAt,
		po.CreatedBy,
		po.LastUpdatedAt,
		po.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrValidation
		}
		return nil, apperrors.NewAppError(500, "failed to insert purchase order", err)
	}

	if err := insertPurchaseOrderLinesInTx(ctx, tx, po); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &po, nil
}

func insertPurchaseOrderLinesInTx(ctx context.Context, tx pgx.Tx, po domain.PurchaseOrder) error {
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO purchase_order_lines (line_id, po_id, product_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, l := range po.Lines {
		batch.Queue(lineQuery, l.LineID, po.PurchaseOrderID, l.ProductID, l.Quantity, l.UnitCost)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for purchase order "+po.PurchaseOrderID, err)
	}
	return nil
}

// UpdatePurchaseOrder rewrites the header while the order is still open.
// The status guard in the WHERE clause keeps RECEIVED and CANCELLED orders
// immutable.
func (r *PgxInventoryRepository) UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder, replaceLines bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE purchase_orders
		SET supplier_id = $3,
		    order_date = $4,
		    expected_date = $5,
		    status = $6,
		    total_cost = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE po_id = $1 AND company_id = $2 AND status NOT IN ('RECEIVED', 'CANCELLED');
	`
	cmdTag, err := tx.Exec(ctx, query,
		po.PurchaseOrderID,
		po.CompanyID,
		po.SupplierID,
		po.OrderDate,
		po.ExpectedDate,
		po.Status,
		po.TotalCost,
		po.LastUpdatedAt,
		po.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update purchase order "+po.PurchaseOrderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		var status domain.PurchaseOrderStatus
		statusErr := tx.QueryRow(ctx, `SELECT status FROM purchase_orders WHERE po_id = $1 AND company_id = $2;`, po.PurchaseOrderID, po.CompanyID).Scan(&status)
		if statusErr != nil {
			if errors.Is(statusErr, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return apperrors.NewAppError(500, "failed to inspect purchase order "+po.PurchaseOrderID, statusErr)
		}
		return apperrors.ErrConflict
	}

	if replaceLines {
		if _, err := tx.Exec(ctx, `DELETE FROM purchase_order_lines WHERE po_id = $1;`, po.PurchaseOrderID); err != nil {
			return apperrors.NewAppError(500, "failed to clear lines for purchase order "+po.PurchaseOrderID, err)
		}
		if err := insertPurchaseOrderLinesInTx(ctx, tx, po); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInventoryRepository) DeletePurchaseOrder(ctx context.Context, companyID string, poID string) error {
	query := `DELETE FROM purchase_orders WHERE po_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, poID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete purchase order "+poID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("purchase order " + poID + " not found for delete")
	}
	return nil
}

// ReceivePurchaseOrder flips an open order to RECEIVED and increments stock
// for every line whose product still exists, all in one database transaction.
// The guarded UPDATE makes receiving one-way: a second receive, or receiving
// a cancelled order, affects zero rows and fails with ErrConflict. Products
// deleted since the order was placed are skipped and reported by id.
func (r *PgxInventoryRepository) ReceivePurchaseOrder(ctx context.Context, companyID string, poID string, updatedBy string) (*domain.PurchaseOrder, []domain.Product, []string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()
	query := `
		UPDATE purchase_orders
		SET status = 'RECEIVED',
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE po_id = $1 AND company_id = $2 AND status NOT IN ('RECEIVED', 'CANCELLED')
		RETURNING ` + purchaseOrderColumns + `;
	`
	po, err := scanPurchaseOrder(tx.QueryRow(ctx, query, poID, companyID, now, updatedBy))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil, apperrors.NewAppError(500, "failed to receive purchase order "+poID, err)
		}
		var status domain.PurchaseOrderStatus
		statusErr := tx.QueryRow(ctx, `SELECT status FROM purchase_orders WHERE po_id = $1 AND company_id = $2;`, poID, companyID).Scan(&status)
		if statusErr != nil {
			if errors.Is(statusErr, pgx.ErrNoRows) {
				return nil, nil, nil, apperrors.ErrNotFound
			}
			return nil, nil, nil, apperrors.NewAppError(500, "failed to inspect purchase order "+poID, statusErr)
		}
		return nil, nil, nil, apperrors.ErrConflict
	}

	lineRows, err := tx.Query(ctx, `
		SELECT line_id, product_id, quantity, unit_cost
		FROM purchase_order_lines
		WHERE po_id = $1
		ORDER BY line_id;
	`, poID)
	if err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "failed to query lines for purchase order "+poID, err)
	}
	lines := []domain.PurchaseOrderLine{}
	for lineRows.Next() {
		var l domain.PurchaseOrderLine
		if err := lineRows.Scan(&l.LineID, &l.ProductID, &l.Quantity, &l.UnitCost); err != nil {
			lineRows.Close()
			return nil, nil, nil, apperrors.NewAppError(500, "failed to scan purchase order line", err)
		}
		lines = append(lines, l)
	}
	lineRows.Close()
	if err := lineRows.Err(); err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "error iterating purchase order lines", err)
	}
	po.Lines = lines

	stockQuery := `
		UPDATE products
		SET stock = stock + $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE product_id = $1 AND company_id = $2
		RETURNING ` + productColumns + `;
	`
	updatedProducts := []domain.Product{}
	missingProductIDs := []string{}
	for _, l := range lines {
		p, err := scanProduct(tx.QueryRow(ctx, stockQuery, l.ProductID, companyID, l.Quantity, now, updatedBy))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				missingProductIDs = append(missingProductIDs, l.ProductID)
				continue
			}
			return nil, nil, nil, apperrors.NewAppError(500, "failed to restock product "+l.ProductID, err)
		}
		updatedProducts = append(updatedProducts, *p)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, nil, err
	}
	return po, updatedProducts, missingProductIDs, nil
}
