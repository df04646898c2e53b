package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// UpdateCategoryRequest defines the payload for updating a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// CategoryResponse defines the category data returned by the API.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Color      string `json:"color"`
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Color:      c.Color,
	}
}

// CreateTransactionRequest defines the payload for creating a transaction.
// Amount is signed: negative for expenses, positive for income.
type CreateTransactionRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID  string          `json:"categoryID" binding:"required"`
	WalletID    string          `json:"walletID" binding:"required"`
	Color       string          `json:"color"`
}

// UpdateTransactionRequest defines the payload for updating a transaction.
type UpdateTransactionRequest struct {
	Date        *time.Time       `json:"date"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	CategoryID  *string          `json:"categoryID"`
	WalletID    *string          `json:"walletID"`
	Color       *string          `json:"color"`
}

// TransactionResponse defines the transaction data returned by the API.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Type          string          `json:"type"`
	CategoryID    string          `json:"categoryID"`
	WalletID      string          `json:"walletID"`
	Color         string          `json:"color"`
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Description:   t.Description,
		Amount:        t.Amount,
		CurrencyCode:  t.CurrencyCode,
		Type:          string(t.Type),
		CategoryID:    t.CategoryID,
		WalletID:      t.WalletID,
		Color:         t.Color,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		responses[i] = ToTransactionResponse(&t)
	}
	return responses
}
