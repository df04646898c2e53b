package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
)

// nextSequenceNumber atomically increments and returns the named per-company
// counter within the given transaction. Counters start at 1 on first use.
// Document numbers (employee, invoice, PO) are minted from these counters so
// that concurrent creates in the same company never collide.
func nextSequenceNumber(ctx context.Context, tx pgx.Tx, companyID string, name string) (int64, error) {
	query := `
		INSERT INTO sequence_counters (company_id, name, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, name) DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value;
	`
	var value int64
	if err := tx.QueryRow(ctx, query, companyID, name).Scan(&value); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance sequence "+name, err)
	}
	return value, nil
}
