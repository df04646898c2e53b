package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// walletService manages the wallets of a company.
type walletService struct {
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates a new instance of walletService.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) GetWalletByID(ctx context.Context, companyID string, walletID string) (*domain.Wallet, error) {
	return s.walletRepo.FindWalletByID(ctx, companyID, walletID)
}

func (s *walletService) ListWallets(ctx context.Context, companyID string, limit int, offset int) ([]domain.Wallet, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.walletRepo.ListWallets(ctx, companyID, limit, offset)
}

func (s *walletService) CreateWallet(ctx context.Context, companyID string, req dto.CreateWalletRequest, userID string) (*domain.Wallet, error) {
	balance := req.Balance
	if balance.IsZero() {
		balance = decimal.Zero
	}

	now := time.Now().UTC()
	wallet := domain.Wallet{
		WalletID:     uuid.NewString(),
		CompanyID:    companyID,
		Name:         req.Name,
		Balance:      balance,
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *walletService) UpdateWallet(ctx context.Context, companyID string, walletID string, req dto.UpdateWalletRequest, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, companyID, walletID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		wallet.Name = *req.Name
	}
	if req.Balance != nil {
		wallet.Balance = *req.Balance
	}
	wallet.LastUpdatedAt = time.Now().UTC()
	wallet.LastUpdatedBy = userID

	if err := s.walletRepo.UpdateWallet(ctx, *wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *walletService) DeleteWallet(ctx context.Context, companyID string, walletID string, userID string) error {
	return s.walletRepo.DeleteWallet(ctx, companyID, walletID)
}
