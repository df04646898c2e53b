package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

func TestInvoice_ComputeTotal(t *testing.T) {
	tests := []struct {
		name    string
		invoice domain.Invoice
		want    decimal.Decimal
	}{
		{
			name:    "no lines",
			invoice: domain.Invoice{},
			want:    decimal.Zero,
		},
		{
			name: "single line",
			invoice: domain.Invoice{
				Lines: []domain.InvoiceLine{
					{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(40)},
				},
			},
			want: decimal.NewFromInt(120),
		},
		{
			name: "multiple lines with fractional quantities",
			invoice: domain.Invoice{
				Lines: []domain.InvoiceLine{
					{Quantity: decimal.NewFromFloat(2.5), UnitPrice: decimal.NewFromInt(100)},
					{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(49.99)},
				},
			},
			want: decimal.NewFromFloat(299.99),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.invoice.ComputeTotal()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
