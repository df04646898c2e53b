package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

func TestExpenseClaim_ReimbursementMatches(t *testing.T) {
	claim := domain.ExpenseClaim{
		CategoryID: "cat-travel",
		Amount:     decimal.RequireFromString("42.50"),
	}

	tests := []struct {
		name string
		txn  domain.Transaction
		want bool
	}{
		{
			name: "negated amount and same category",
			txn:  domain.Transaction{Amount: decimal.RequireFromString("-42.50"), CategoryID: "cat-travel"},
			want: true,
		},
		{
			name: "amount edited after the payout was built",
			txn:  domain.Transaction{Amount: decimal.RequireFromString("-40.00"), CategoryID: "cat-travel"},
			want: false,
		},
		{
			name: "category edited after the payout was built",
			txn:  domain.Transaction{Amount: decimal.RequireFromString("-42.50"), CategoryID: "cat-meals"},
			want: false,
		},
		{
			name: "positive amount never matches",
			txn:  domain.Transaction{Amount: decimal.RequireFromString("42.50"), CategoryID: "cat-travel"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, claim.ReimbursementMatches(tt.txn))
		})
	}
}
