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
)

type PgxExpenseClaimRepository struct {
	BaseRepository
}

func newPgxExpenseClaimRepository(pool *pgxpool.Pool) portsrepo.ExpenseClaimRepositoryFacade {
	return &PgxExpenseClaimRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseClaimRepositoryFacade = (*PgxExpenseClaimRepository)(nil)

const claimColumns = `claim_id, company_id, employee_id, date, category_id, amount, description, status,
       created_at, created_by, last_updated_at, last_updated_by`

func scanClaim(row pgx.Row) (*domain.ExpenseClaim, error) {
	var c domain.ExpenseClaim
	err := row.Scan(
		&c.ClaimID,
		&c.CompanyID,
		&c.EmployeeID,
		&c.Date,
		&c.CategoryID,
		&c.Amount,
		&c.Description,
		&c.Status,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxExpenseClaimRepository) FindClaimByID(ctx context.Context, companyID string, claimID string) (*domain.ExpenseClaim, error) {
	query := `SELECT ` + claimColumns + ` FROM expense_claims WHERE claim_id = $1 AND company_id = $2;`
	claim, err := scanClaim(r.Pool.QueryRow(ctx, query, claimID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find claim by ID "+claimID, err)
	}
	return claim, nil
}

func (r *PgxExpenseClaimRepository) ListClaims(ctx context.Context, companyID string, status *domain.ClaimStatus, limit int, offset int) ([]domain.ExpenseClaim, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + claimColumns + ` FROM expense_claims WHERE company_id = $1`
	args := []any{companyID}
	if status != nil {
		query += ` AND status = $2 ORDER BY date DESC LIMIT $3 OFFSET $4;`
		args = append(args, *status, limit, offset)
	} else {
		query += ` ORDER BY date DESC LIMIT $2 OFFSET $3;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query claims for company "+companyID, err)
	}
	defer rows.Close()

	claims := []domain.ExpenseClaim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan claim row", err)
		}
		claims = append(claims, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating claim rows", err)
	}
	return claims, nil
}

func (r *PgxExpenseClaimRepository) SaveClaim(ctx context.Context, claim domain.ExpenseClaim) error {
	query := `
		INSERT INTO expense_claims (claim_id, company_id, employee_id, date, category_id, amount, description, status,
		                            created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		claim.ClaimID,
		claim.CompanyID,
		claim.EmployeeID,
		claim.Date,
		claim.CategoryID,
		claim.Amount,
		claim.Description,
		claim.Status,
		claim.CreatedAt,
		claim.CreatedBy,
		claim.LastUpdatedAt,
		claim.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrValidation
		}
		return apperrors.NewAppError(500, "failed to save claim", err)
	}
	return nil
}

func (r *PgxExpenseClaimRepository) UpdateClaim(ctx context.Context, claim domain.ExpenseClaim) error {
	query := `
		UPDATE expense_claims
		SET date = $3,
		    category_id = $4,
		    amount = $5,
		    description = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE claim_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		claim.ClaimID,
		claim.CompanyID,
		claim.Date,
		claim.CategoryID,
		claim.Amount,
		claim.Description,
		claim.LastUpdatedAt,
		claim.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update claim "+claim.ClaimID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("claim " + claim.ClaimID + " not found for update")
	}
	return nil
}

func (r *PgxExpenseClaimRepository) DeleteClaim(ctx context.Context, companyID string, claimID string) error {
	query := `DELETE FROM expense_claims WHERE claim_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, claimID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete claim "+claimID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("claim " + claimID + " not found for delete")
	}
	return nil
}

// ApproveClaim flips a PENDING claim to APPROVED, inserts the reimbursement
// transaction, and debits the paying wallet, all in one database transaction.
// The status change is guarded in the UPDATE itself so a concurrent second
// approval sees zero rows and fails with ErrConflict.
func (r *PgxExpenseClaimRepository) ApproveClaim(ctx context.Context, companyID string, claimID string, txn domain.Transaction) (*domain.ExpenseClaim, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	updated, err := r.transitionClaimStatusInTx(ctx, tx, companyID, claimID, domain.ClaimPending, domain.ClaimApproved, txn.LastUpdatedBy, txn.LastUpdatedAt)
	if err != nil {
		return nil, err
	}

	// The reimbursement was built from a read outside this transaction. If a
	// concurrent edit changed the claim in between, the payout no longer
	// matches the claim being approved and must not commit.
	if !updated.ReimbursementMatches(txn) {
		return nil, apperrors.ErrConflict
	}

	if err := insertTransactionInTx(ctx, tx, txn); err != nil {
		return nil, err
	}
	if err := adjustWalletBalanceInTx(ctx, tx, txn.CompanyID, txn.WalletID, txn.Amount, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}

// RejectClaim flips a PENDING claim to REJECTED. No money moves.
func (r *PgxExpenseClaimRepository) RejectClaim(ctx context.Context, companyID string, claimID string, updatedBy string) (*domain.ExpenseClaim, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	updated, err := r.transitionClaimStatusInTx(ctx, tx, companyID, claimID, domain.ClaimPending, domain.ClaimRejected, updatedBy, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}

// transitionClaimStatusInTx performs the guarded status UPDATE and returns
// the claim as it stands after the transition. Zero rows affected means the
// claim either does not exist (ErrNotFound) or is no longer in the expected
// state (ErrConflict).
func (r *PgxExpenseClaimRepository) transitionClaimStatusInTx(ctx context.Context, tx pgx.Tx, companyID string, claimID string, from domain.ClaimStatus, to domain.ClaimStatus, updatedBy string, at time.Time) (*domain.ExpenseClaim, error) {
	query := `
		UPDATE expense_claims
		SET status = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE claim_id = $1 AND company_id = $2 AND status = $3
		RETURNING ` + claimColumns + `;
	`
	updated, err := scanClaim(tx.QueryRow(ctx, query, claimID, companyID, from, to, at, updatedBy))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to transition claim "+claimID, err)
	}

	// Disambiguate: missing claim vs wrong state.
	var status domain.ClaimStatus
	statusErr := tx.QueryRow(ctx, `SELECT status FROM expense_claims WHERE claim_id = $1 AND company_id = $2;`, claimID, companyID).Scan(&status)
	if statusErr != nil {
		if errors.Is(statusErr, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to inspect claim "+claimID, statusErr)
	}
	return nil, apperrors.ErrConflict
}
