package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// CompanySvcFacade defines operations on the caller's own company.
type CompanySvcFacade interface {
	// GetCompany retrieves the caller's company.
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)

	// UpdateCompany changes company settings. A new default wallet must
	// belong to the company; the empty string clears it.
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, userID string) (*domain.Company, error)
}
