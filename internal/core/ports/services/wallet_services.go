package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// WalletReaderSvc defines read operations for wallet data
type WalletReaderSvc interface {
	// GetWalletByID retrieves a specific wallet by its unique identifier.
	GetWalletByID(ctx context.Context, companyID string, walletID string) (*domain.Wallet, error)

	// ListWallets retrieves the wallets of a company.
	ListWallets(ctx context.Context, companyID string, limit int, offset int) ([]domain.Wallet, error)
}

// WalletWriterSvc defines write operations for wallet data
type WalletWriterSvc interface {
	// CreateWallet persists a new wallet.
	CreateWallet(ctx context.Context, companyID string, req dto.CreateWalletRequest, userID string) (*domain.Wallet, error)

	// UpdateWallet updates an existing wallet's details.
	UpdateWallet(ctx context.Context, companyID string, walletID string, req dto.UpdateWalletRequest, userID string) (*domain.Wallet, error)

	// DeleteWallet removes a wallet from a company.
	DeleteWallet(ctx context.Context, companyID string, walletID string, userID string) error
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
