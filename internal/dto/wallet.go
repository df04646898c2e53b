package dto

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the payload for creating a wallet.
type CreateWalletRequest struct {
	Name         string          `json:"name" binding:"required"`
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
}

// UpdateWalletRequest defines the payload for updating a wallet.
type UpdateWalletRequest struct {
	Name    *string          `json:"name"`
	Balance *decimal.Decimal `json:"balance"`
}

// WalletResponse defines the wallet data returned by the API.
type WalletResponse struct {
	WalletID     string          `json:"walletID"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"`
}

// ListWalletsResponse wraps a list of wallets.
type ListWalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// ToWalletResponse converts a domain.Wallet to a WalletResponse DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:     w.WalletID,
		Name:         w.Name,
		Balance:      w.Balance,
		CurrencyCode: w.CurrencyCode,
	}
}
