package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a money movement.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Category classifies transactions and budgets.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	CompanyID  string `json:"companyID"`
	Name       string `json:"name"`
	Color      string `json:"color"` // Hex color used by the frontend
	AuditFields
}

// InternalTransferCategory is the reserved category name used for
// goal-contribution transactions.
const InternalTransferCategory = "Internal Transfer"

// Transaction is a single signed money movement against a wallet.
// Amount is negative for expenses and positive for income. Transactions are
// created directly by users and as side effects of expense-claim approval and
// goal contribution.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	CompanyID     string          `json:"companyID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Signed: negative = expense, positive = income
	CurrencyCode  string          `json:"currencyCode"`
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryID"`
	WalletID      string          `json:"walletID"`
	Color         string          `json:"color"`
	AuditFields
}
