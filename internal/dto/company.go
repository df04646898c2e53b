package dto

import "github.com/finbooks/finbooks_backend/internal/core/domain"

// UpdateCompanyRequest defines the payload for changing company settings.
// Setting DefaultWalletID to the empty string clears the default wallet.
type UpdateCompanyRequest struct {
	Name            *string `json:"name"`
	DefaultWalletID *string `json:"defaultWalletID"`
	CurrencyCode    *string `json:"currencyCode" binding:"omitempty,len=3"`
}

// CompanyResponse defines the company data returned by the API.
type CompanyResponse struct {
	CompanyID       string  `json:"companyID"`
	Name            string  `json:"name"`
	DefaultWalletID *string `json:"defaultWalletID"`
	CurrencyCode    string  `json:"currencyCode"`
}

// ToCompanyResponse converts a domain.Company to its DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:       c.CompanyID,
		Name:            c.Name,
		DefaultWalletID: c.DefaultWalletID,
		CurrencyCode:    c.CurrencyCode,
	}
}
