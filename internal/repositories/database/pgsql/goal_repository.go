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

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalColumns = `goal_id, company_id, name, target_amount, current_amount, deadline,
       created_at, created_by, last_updated_at, last_updated_by`

func scanGoal(row pgx.Row) (*domain.FinancialGoal, error) {
	var g domain.FinancialGoal
	err := row.Scan(
		&g.GoalID,
		&g.CompanyID,
		&g.Name,
		&g.TargetAmount,
		&g.CurrentAmount,
		&g.Deadline,
		&g.CreatedAt,
		&g.CreatedBy,
		&g.LastUpdatedAt,
		&g.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, companyID string, goalID string) (*domain.FinancialGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM financial_goals WHERE goal_id = $1 AND company_id = $2;`
	goal, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find goal by ID "+goalID, err)
	}
	return goal, nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context, companyID string, limit int, offset int) ([]domain.FinancialGoal, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + goalColumns + ` FROM financial_goals
		WHERE company_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query goals for company "+companyID, err)
	}
	defer rows.Close()

	goals := []domain.FinancialGoal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan goal row", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating goal rows", err)
	}
	return goals, nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.FinancialGoal) error {
	query := `
		INSERT INTO financial_goals (goal_id, company_id, name, target_amount, current_amount, deadline,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.CompanyID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.CreatedAt,
		goal.CreatedBy,
		goal.LastUpdatedAt,
		goal.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save goal", err)
	}
	return nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.FinancialGoal) error {
	query := `
		UPDATE financial_goals
		SET name = $3,
		    target_amount = $4,
		    deadline = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE goal_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.CompanyID,
		goal.Name,
		goal.TargetAmount,
		goal.Deadline,
		goal.LastUpdatedAt,
		goal.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update goal "+goal.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("goal " + goal.GoalID + " not found for update")
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, companyID string, goalID string) error {
	query := `DELETE FROM financial_goals WHERE goal_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, goalID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete goal "+goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("goal " + goalID + " not found for delete")
	}
	return nil
}

// ContributeToGoal increments the goal's saved amount, inserts the funding
// transaction, and debits the source wallet, all in one database transaction.
// The transaction amount is negative (money leaving the wallet); the goal is
// credited with its absolute value.
func (r *PgxGoalRepository) ContributeToGoal(ctx context.Context, companyID string, goalID string, txn domain.Transaction) (*domain.FinancialGoal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE financial_goals
		SET current_amount = current_amount + $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE goal_id = $1 AND company_id = $2
		RETURNING ` + goalColumns + `;
	`
	updated, err := scanGoal(tx.QueryRow(ctx, query, goalID, companyID, txn.Amount.Abs(), txn.LastUpdatedAt, txn.LastUpdatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to fund goal "+goalID, err)
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
