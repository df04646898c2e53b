package services

import (
	"context"
	"strings"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// companyService manages the caller's own company settings, most notably
// the default wallet used by expense-claim approvals.
type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	walletRepo  portsrepo.WalletRepositoryFacade
}

// NewCompanyService creates a new instance of companyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, walletRepo portsrepo.WalletRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		walletRepo:  walletRepo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// UpdateCompany applies partial settings changes. A new default wallet is
// looked up within the company first, so a foreign or unknown wallet ID
// fails as not-found before anything is written.
func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, userID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.CurrencyCode != nil {
		company.CurrencyCode = strings.ToUpper(*req.CurrencyCode)
	}
	if req.DefaultWalletID != nil {
		if *req.DefaultWalletID == "" {
			company.DefaultWalletID = nil
		} else {
			wallet, err := s.walletRepo.FindWalletByID(ctx, companyID, *req.DefaultWalletID)
			if err != nil {
				return nil, err
			}
			company.DefaultWalletID = &wallet.WalletID
		}
	}
	company.LastUpdatedAt = time.Now().UTC()
	company.LastUpdatedBy = userID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		return nil, err
	}
	return company, nil
}
