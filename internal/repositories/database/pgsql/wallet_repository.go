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

type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

const walletColumns = `wallet_id, company_id, name, balance, currency_code,
       created_at, created_by, last_updated_at, last_updated_by`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(
		&w.WalletID,
		&w.CompanyID,
		&w.Name,
		&w.Balance,
		&w.CurrencyCode,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, companyID string, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1 AND company_id = $2;`
	wallet, err := scanWallet(r.Pool.QueryRow(ctx, query, walletID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find wallet by ID "+walletID, err)
	}
	return wallet, nil
}

func (r *PgxWalletRepository) ListWallets(ctx context.Context, companyID string, limit int, offset int) ([]domain.Wallet, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query wallets for company "+companyID, err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan wallet row", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating wallet rows", err)
	}
	return wallets, nil
}

func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	query := `
		INSERT INTO wallets (wallet_id, company_id, name, balance, currency_code,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		wallet.WalletID,
		wallet.CompanyID,
		wallet.Name,
		wallet.Balance,
		wallet.CurrencyCode,
		wallet.CreatedAt,
		wallet.CreatedBy,
		wallet.LastUpdatedAt,
		wallet.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save wallet", err)
	}
	return nil
}

func (r *PgxWalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	query := `
		UPDATE wallets
		SET name = $3,
		    balance = $4,
		    currency_code = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE wallet_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		wallet.WalletID,
		wallet.CompanyID,
		wallet.Name,
		wallet.Balance,
		wallet.CurrencyCode,
		wallet.LastUpdatedAt,
		wallet.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update wallet "+wallet.WalletID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("wallet " + wallet.WalletID + " not found for update")
	}
	return nil
}

func (r *PgxWalletRepository) DeleteWallet(ctx context.Context, companyID string, walletID string) error {
	query := `DELETE FROM wallets WHERE wallet_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, walletID, companyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to delete wallet "+walletID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("wallet " + walletID + " not found for delete")
	}
	return nil
}
