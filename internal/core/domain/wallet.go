package domain

import "github.com/shopspring/decimal"

// Wallet represents a source of funds (bank account, cash box, card).
// Balance is a stored baseline; a wallet's effective balance is the baseline
// plus the sum of signed amounts of all transactions referencing it.
type Wallet struct {
	WalletID     string          `json:"walletID"` // Primary Key (UUID)
	CompanyID    string          `json:"companyID"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"`
	AuditFields
}
