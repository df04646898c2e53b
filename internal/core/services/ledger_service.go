package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/events"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

var (
	ErrJournalUnbalanced = errors.New("journal lines do not balance: total debits must equal total credits")
	ErrJournalZeroTotal  = errors.New("journal total must be positive")
	ErrJournalMinLines   = errors.New("journal must have at least two lines")
	ErrJournalBothSides  = errors.New("a journal line must not carry both a debit and a credit")
)

// ledgerService manages the chart of accounts and double-entry journal.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
	publisher  events.Publisher
}

// NewLedgerService creates a new instance of ledgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, publisher events.Publisher) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		publisher:  publisher,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// --- Accounts ---

func (s *ledgerService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.LedgerAccount, error) {
	return s.ledgerRepo.FindAccountByID(ctx, companyID, accountID)
}

func (s *ledgerService) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.LedgerAccount, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.ledgerRepo.ListAccounts(ctx, companyID, limit, offset)
}

func (s *ledgerService) CreateAccount(ctx context.Context, companyID string, req dto.CreateLedgerAccountRequest, userID string) (*domain.LedgerAccount, error) {
	now := time.Now().UTC()
	account := domain.LedgerAccount{
		AccountID: uuid.NewString(),
		CompanyID: companyID,
		Code:      req.Code,
		Name:      req.Name,
		Type:      domain.LedgerAccountType(req.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ledgerRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *ledgerService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateLedgerAccountRequest, userID string) (*domain.LedgerAccount, error) {
	account, err := s.ledgerRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		account.Code = *req.Code
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Type != nil {
		account.Type = domain.LedgerAccountType(*req.Type)
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.ledgerRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *ledgerService) DeleteAccount(ctx context.Context, companyID string, accountID string, userID string) error {
	return s.ledgerRepo.DeleteAccount(ctx, companyID, accountID)
}

// --- Journal entries ---

func (s *ledgerService) GetJournalEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	return s.ledgerRepo.FindJournalEntryByID(ctx, companyID, entryID)
}

func (s *ledgerService) ListJournalEntries(ctx context.Context, companyID string, limit int, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.ledgerRepo.ListJournalEntries(ctx, companyID, limit, offset)
}

// validateJournalLines enforces double-entry rules: at least two lines, no
// line with both sides set, no negative side, total debits equal to total
// credits, and a positive common total.
func (s *ledgerService) validateJournalLines(lines []dto.JournalLineRequest) error {
	if len(lines) < 2 {
		return ErrJournalMinLines
	}

	debitsSum := decimal.Zero
	creditsSum := decimal.Zero
	for _, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: journal amounts must not be negative", apperrors.ErrValidation)
		}
		if !l.Debit.IsZero() && !l.Credit.IsZero() {
			return ErrJournalBothSides
		}
		debitsSum = debitsSum.Add(l.Debit)
		creditsSum = creditsSum.Add(l.Credit)
	}

	if !debitsSum.Equal(creditsSum) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s", ErrJournalUnbalanced, debitsSum.String(), creditsSum.String())
	}
	if debitsSum.IsZero() {
		return ErrJournalZeroTotal
	}
	return nil
}

// CreateJournalEntry validates and posts a balanced journal entry. Every
// referenced account must exist in the company.
func (s *ledgerService) CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateJournalLines(req.Lines); err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(req.Lines))
	for _, l := range req.Lines {
		accountIDs = append(accountIDs, l.AccountID)
	}

	accounts, err := s.ledgerRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: ledger account %s not found", apperrors.ErrValidation, id)
		}
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:   uuid.NewString(),
		CompanyID: companyID,
		Date:      req.Date,
		Ref:       req.Ref,
		Lines:     make([]domain.JournalLine, len(req.Lines)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	for i, l := range req.Lines {
		entry.Lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}

	if err := s.ledgerRepo.SaveJournalEntry(ctx, entry); err != nil {
		return nil, err
	}

	if pubErr := s.publisher.Publish(ctx, events.JournalPosted, &entry); pubErr != nil {
		logger.WarnContext(ctx, "failed to publish journal posted event", slog.String("entry_id", entry.EntryID), slog.String("error", pubErr.Error()))
	}

	return &entry, nil
}

// UpdateJournalEntry amends an entry's header fields and, when a new line set
// is supplied, replaces the lines after revalidating the balance rules.
func (s *ledgerService) UpdateJournalEntry(ctx context.Context, companyID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry, err := s.ledgerRepo.FindJournalEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Ref != nil {
		entry.Ref = *req.Ref
	}

	if req.Lines != nil {
		if err := s.validateJournalLines(req.Lines); err != nil {
			return nil, err
		}

		accountIDs := make([]string, 0, len(req.Lines))
		for _, l := range req.Lines {
			accountIDs = append(accountIDs, l.AccountID)
		}
		accounts, err := s.ledgerRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range accountIDs {
			if _, ok := accounts[id]; !ok {
				return nil, fmt.Errorf("%w: ledger account %s not found", apperrors.ErrValidation, id)
			}
		}

		entry.Lines = make([]domain.JournalLine, len(req.Lines))
		for i, l := range req.Lines {
			entry.Lines[i] = domain.JournalLine{
				LineID:      uuid.NewString(),
				AccountID:   l.AccountID,
				Debit:       l.Debit,
				Credit:      l.Credit,
				Description: l.Description,
			}
		}
	}

	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = userID

	if err := s.ledgerRepo.UpdateJournalEntry(ctx, *entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) DeleteJournalEntry(ctx context.Context, companyID string, entryID string, userID string) error {
	return s.ledgerRepo.DeleteJournalEntry(ctx, companyID, entryID)
}
