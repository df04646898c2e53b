package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/utils"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, company_id, invoice_number, customer_id, issue_date, due_date, status, total,
       created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.CompanyID,
		&inv.InvoiceNumber,
		&inv.CustomerID,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.Status,
		&inv.Total,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, companyID string, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 AND company_id = $2;`
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}

	lines, err := r.findInvoiceLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines
	return inv, nil
}

func (r *PgxInvoiceRepository) findInvoiceLines(ctx context.Context, invoiceID string) ([]domain.InvoiceLine, error) {
	query := `
		SELECT line_id, description, quantity, unit_price
		FROM invoice_lines
		WHERE invoice_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for invoice "+invoiceID, err)
	}
	defer rows.Close()

	lines := []domain.InvoiceLine{}
	for rows.Next() {
		var l domain.InvoiceLine
		if err := rows.Scan(&l.LineID, &l.Description, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice lines", err)
	}
	return lines, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, companyID string, status *domain.InvoiceStatus, limit int, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1`
	args := []any{companyID}
	if status != nil {
		query += ` AND status = $2 ORDER BY issue_date DESC LIMIT $3 OFFSET $4;`
		args = append(args, *status, limit, offset)
	} else {
		query += ` ORDER BY issue_date DESC LIMIT $2 OFFSET $3;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices for company "+companyID, err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}

	for i := range invoices {
		lines, err := r.findInvoiceLines(ctx, invoices[i].InvoiceID)
		if err != nil {
			return nil, err
		}
		invoices[i].Lines = lines
	}
	return invoices, nil
}

// SaveInvoice inserts the invoice and its lines, minting the invoice number
// from the company's sequence inside the same database transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	seq, err := nextSequenceNumber(ctx, tx, invoice.CompanyID, "invoice")
	if err != nil {
		return nil, err
	}
	invoice.InvoiceNumber = utils.FormatSequenceNumber("INV", seq)

	headerQuery := `
		INSERT INTO invoices (invoice_id, company_id, invoice_number, customer_id, issue_date, due_date, status, total,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, headerQuery,
		invoice.InvoiceID,
		invoice.CompanyID,
		invoice.InvoiceNumber,
		invoice.CustomerID,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.Status,
		invoice.Total,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrValidation
		}
		return nil, apperrors.NewAppError(500, "failed to insert invoice", err)
	}

	if err := insertInvoiceLinesInTx(ctx, tx, invoice); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func insertInvoiceLinesInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO invoice_lines (line_id, invoice_id, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, l := range invoice.Lines {
		batch.Queue(lineQuery, l.LineID, invoice.InvoiceID, l.Description, l.Quantity, l.UnitPrice)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for invoice "+invoice.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, replaceLines bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE invoices
		SET customer_id = $3,
		    issue_date = $4,
		    due_date = $5,
		    status = $6,
		    total = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE invoice_id = $1 AND company_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.CompanyID,
		invoice.CustomerID,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.Status,
		invoice.Total,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice " + invoice.InvoiceID + " not found for update")
	}

	if replaceLines {
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1;`, invoice.InvoiceID); err != nil {
			return apperrors.NewAppError(500, "failed to clear lines for invoice "+invoice.InvoiceID, err)
		}
		if err := insertInvoiceLinesInTx(ctx, tx, invoice); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, companyID string, invoiceID string) error {
	query := `DELETE FROM invoices WHERE invoice_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, invoiceID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice " + invoiceID + " not found for delete")
	}
	return nil
}
