package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWalletByID retrieves a wallet within a company by its unique identifier.
	FindWalletByID(ctx context.Context, companyID string, walletID string) (*domain.Wallet, error)

	// ListWallets retrieves the wallets of a company ordered by name.
	ListWallets(ctx context.Context, companyID string, limit int, offset int) ([]domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data
type WalletWriter interface {
	// SaveWallet persists a new wallet.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// UpdateWallet updates an existing wallet's details.
	UpdateWallet(ctx context.Context, wallet domain.Wallet) error

	// DeleteWallet removes a wallet from a company.
	DeleteWallet(ctx context.Context, companyID string, walletID string) error
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
