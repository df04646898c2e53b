package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// --- Categories ---

const categoryColumns = `category_id, company_id, name, color,
       created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(
		&c.CategoryID,
		&c.CompanyID,
		&c.Name,
		&c.Color,
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

func (r *PgxTransactionRepository) FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1 AND company_id = $2;`
	category, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category by ID "+categoryID, err)
	}
	return category, nil
}

func (r *PgxTransactionRepository) ListCategories(ctx context.Context, companyID string, limit int, offset int) ([]domain.Category, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories for company "+companyID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}

func (r *PgxTransactionRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_id, company_id, name, color,
		                        created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.CompanyID,
		category.Name,
		category.Color,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save category", err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $3,
		    color = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE category_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.CompanyID,
		category.Name,
		category.Color,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update category "+category.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + category.CategoryID + " not found for update")
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteCategory(ctx context.Context, companyID string, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, categoryID, companyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + categoryID + " not found for delete")
	}
	return nil
}

// --- Transactions ---

const transactionColumns = `transaction_id, company_id, date, description, amount, currency_code,
       type, category_id, wallet_id, color,
       created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.CompanyID,
		&t.Date,
		&t.Description,
		&t.Amount,
		&t.CurrencyCode,
		&t.Type,
		&t.CategoryID,
		&t.WalletID,
		&t.Color,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND company_id = $2;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, companyID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE company_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;`
	return r.queryTransactions(ctx, query, companyID, limit, offset)
}

func (r *PgxTransactionRepository) ListTransactionsByWallet(ctx context.Context, companyID string, walletID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE company_id = $1 AND wallet_id = $2
		ORDER BY date DESC, created_at DESC
		LIMIT $3 OFFSET $4;`
	return r.queryTransactions(ctx, query, companyID, walletID, limit, offset)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return transactions, nil
}

// SaveTransaction inserts the transaction and applies its signed amount to
// the wallet balance in one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}
	if err := adjustWalletBalanceInTx(ctx, tx, txn.CompanyID, txn.WalletID, txn.Amount, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction rewrites the row, reversing the previous amount on the
// previous wallet and applying the new amount to the new wallet.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	old, err := findTransactionForUpdateInTx(ctx, tx, txn.CompanyID, txn.TransactionID)
	if err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET date = $3,
		    description = $4,
		    amount = $5,
		    currency_code = $6,
		    type = $7,
		    category_id = $8,
		    wallet_id = $9,
		    color = $10,
		    last_updated_at = $11,
		    last_updated_by = $12
		WHERE transaction_id = $1 AND company_id = $2;
	`
	_, err = tx.Exec(ctx, query,
		txn.TransactionID,
		txn.CompanyID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.CurrencyCode,
		txn.Type,
		txn.CategoryID,
		txn.WalletID,
		txn.Color,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+txn.TransactionID, err)
	}

	if err := adjustWalletBalanceInTx(ctx, tx, old.CompanyID, old.WalletID, old.Amount.Neg(), txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}
	if err := adjustWalletBalanceInTx(ctx, tx, txn.CompanyID, txn.WalletID, txn.Amount, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the row and reverses its amount on the wallet.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, companyID string, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	old, err := findTransactionForUpdateInTx(ctx, tx, companyID, transactionID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND company_id = $2;`, transactionID, companyID); err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if err := adjustWalletBalanceInTx(ctx, tx, old.CompanyID, old.WalletID, old.Amount.Neg(), old.LastUpdatedBy, old.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// --- shared transaction helpers, reused by the claim and goal repositories ---

func insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, company_id, date, description, amount, currency_code,
		                          type, category_id, wallet_id, color,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.CompanyID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.CurrencyCode,
		txn.Type,
		txn.CategoryID,
		txn.WalletID,
		txn.Color,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+txn.TransactionID, err)
	}
	return nil
}

func findTransactionForUpdateInTx(ctx context.Context, tx pgx.Tx, companyID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE transaction_id = $1 AND company_id = $2
		FOR UPDATE;`
	txn, err := scanTransaction(tx.QueryRow(ctx, query, transactionID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}
	return txn, nil
}

// adjustWalletBalanceInTx locks the wallet row and applies a signed delta to
// its balance. A missing wallet surfaces as ErrNotFound.
func adjustWalletBalanceInTx(ctx context.Context, tx pgx.Tx, companyID string, walletID string, delta decimal.Decimal, userID string, at time.Time) error {
	query := `
		UPDATE wallets
		SET balance = balance + $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE wallet_id = $1 AND company_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query, walletID, companyID, delta, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust balance of wallet "+walletID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("wallet " + walletID + " not found for balance update")
	}
	return nil
}
