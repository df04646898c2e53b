package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, company_id, category_id, amount, period,
       created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	err := row.Scan(
		&b.BudgetID,
		&b.CompanyID,
		&b.CategoryID,
		&b.Amount,
		&b.Period,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, companyID string, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1 AND company_id = $2;`
	budget, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find budget by ID "+budgetID, err)
	}
	return budget, nil
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, companyID string, period *string, limit int, offset int) ([]domain.Budget, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE company_id = $1`
	args := []any{companyID}
	if period != nil {
		query += ` AND period = $2 ORDER BY period DESC LIMIT $3 OFFSET $4;`
		args = append(args, *period, limit, offset)
	} else {
		query += ` ORDER BY period DESC LIMIT $2 OFFSET $3;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budgets for company "+companyID, err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget row", err)
		}
		budgets = append(budgets, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget rows", err)
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (budget_id, company_id, category_id, amount, period,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		budget.BudgetID,
		budget.CompanyID,
		budget.CategoryID,
		budget.Amount,
		budget.Period,
		budget.CreatedAt,
		budget.CreatedBy,
		budget.LastUpdatedAt,
		budget.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return apperrors.ErrValidation
		}
		return apperrors.NewAppError(500, "failed to save budget", err)
	}
	return nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		UPDATE budgets
		SET category_id = $3,
		    amount = $4,
		    period = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE budget_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		budget.BudgetID,
		budget.CompanyID,
		budget.CategoryID,
		budget.Amount,
		budget.Period,
		budget.LastUpdatedAt,
		budget.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update budget "+budget.BudgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget " + budget.BudgetID + " not found for update")
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, companyID string, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, budgetID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget "+budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget " + budgetID + " not found for delete")
	}
	return nil
}
