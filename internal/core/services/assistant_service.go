package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

const assistantSystemPrompt = `You are a financial assistant for a small business using the Finbooks platform.
Answer the user's question using only the company data provided below.
Amounts are in the company's own currency unless stated otherwise.
If the data does not contain the answer, say so instead of guessing.
Keep answers short and concrete.`

// summaryListLimit bounds how many rows of each aggregate are fed to the model.
const summaryListLimit = 20

// assistantService answers natural-language questions about a company's
// finances by grounding an LLM with a snapshot of the company's data.
type assistantService struct {
	llm           portssvc.LLMClient
	walletRepo    portsrepo.WalletRepositoryFacade
	txnRepo       portsrepo.TransactionRepositoryFacade
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	goalRepo      portsrepo.GoalRepositoryFacade
	claimRepo     portsrepo.ExpenseClaimRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewAssistantService creates a new instance of assistantService.
func NewAssistantService(
	llm portssvc.LLMClient,
	walletRepo portsrepo.WalletRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	goalRepo portsrepo.GoalRepositoryFacade,
	claimRepo portsrepo.ExpenseClaimRepositoryFacade,
	inventoryRepo portsrepo.InventoryRepositoryFacade,
) portssvc.AssistantSvcFacade {
	return &assistantService{
		llm:           llm,
		walletRepo:    walletRepo,
		txnRepo:       txnRepo,
		invoiceRepo:   invoiceRepo,
		goalRepo:      goalRepo,
		claimRepo:     claimRepo,
		inventoryRepo: inventoryRepo,
	}
}

var _ portssvc.AssistantSvcFacade = (*assistantService)(nil)

// Query answers a question about the company's finances.
func (s *assistantService) Query(ctx context.Context, companyID string, question string, userID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: question must not be empty", apperrors.ErrValidation)
	}

	summary, err := s.buildCompanySummary(ctx, companyID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build company summary for assistant", slog.String("error", err.Error()))
		return "", err
	}

	answer, err := s.llm.Complete(ctx, assistantSystemPrompt, fmt.Sprintf("Company data:\n%s\nQuestion: %s", summary, question))
	if err != nil {
		logger.ErrorContext(ctx, "assistant completion failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", apperrors.ErrDependency, err)
	}

	return answer, nil
}

// buildCompanySummary renders a plain-text snapshot of the company's wallets,
// recent transactions, invoices, goals, claims and stock levels.
func (s *assistantService) buildCompanySummary(ctx context.Context, companyID string) (string, error) {
	var b strings.Builder

	wallets, err := s.walletRepo.ListWallets(ctx, companyID, summaryListLimit, 0)
	if err != nil {
		return "", err
	}
	b.WriteString("Wallets:\n")
	for _, w := range wallets {
		fmt.Fprintf(&b, "- %s: %s %s\n", w.Name, w.Balance.StringFixed(2), w.CurrencyCode)
	}

	txns, err := s.txnRepo.ListTransactions(ctx, companyID, summaryListLimit, 0)
	if err != nil {
		return "", err
	}
	b.WriteString("Recent transactions:\n")
	for _, t := range txns {
		fmt.Fprintf(&b, "- %s | %s | %s %s\n", t.Date.Format("2006-01-02"), t.Description, t.Amount.StringFixed(2), t.CurrencyCode)
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, companyID, nil, summaryListLimit, 0)
	if err != nil {
		return "", err
	}
	b.WriteString("Invoices:\n")
	for _, inv := range invoices {
		fmt.Fprintf(&b, "- %s | %s | total %s | due %s\n", inv.InvoiceNumber, inv.Status, inv.Total.StringFixed(2), inv.DueDate.Format("2006-01-02"))
	}

	goals, err := s.goalRepo.ListGoals(ctx, companyID, summaryListLimit, 0)
	if err != nil {
		return "", err
	}
	b.WriteString("Goals:\n")
	for _, g := range goals {
		fmt.Fprintf(&b, "- %s: %s of %s\n", g.Name, g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2))
	}

	claims, err := s.claimRepo.ListClaims(ctx, companyID, nil, summaryListLimit, 0)
	if err != nil {
		return "", err
	}
	b.WriteString("Expense claims:\n")
	for _, c := range claims {
		fmt.Fprintf(&b, "- %s | %s | %s\n", c.Description, c.Amount.StringFixed(2), c.Status)
	}

	products, err := s.inventoryRepo.ListProducts(ctx, companyID, summaryListLimit, 0)
	if err != nil {
		return "", err
	}
	b.WriteString("Products:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s): stock %d, price %s\n", p.Name, p.SKU, p.Stock, p.Price.StringFixed(2))
	}

	return b.String(), nil
}
