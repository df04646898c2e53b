package services

import (
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/events"
	"github.com/finbooks/finbooks_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher, llm portssvc.LLMClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.CompanyRepo)
	container.Company = NewCompanyService(repos.CompanyRepo, repos.WalletRepo)
	container.Wallet = NewWalletService(repos.WalletRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.WalletRepo)
	container.Contact = NewContactService(repos.ContactRepo)
	container.HR = NewHRService(repos.HRRepo)
	container.ExpenseClaim = NewExpenseClaimService(repos.ExpenseClaimRepo, repos.CompanyRepo, repos.WalletRepo, repos.HRRepo, publisher)
	container.Goal = NewGoalService(repos.GoalRepo, repos.WalletRepo, repos.TransactionRepo, publisher)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo, repos.ContactRepo, publisher)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ContactRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, publisher)
	container.Assistant = NewAssistantService(llm, repos.WalletRepo, repos.TransactionRepo, repos.InvoiceRepo, repos.GoalRepo, repos.ExpenseClaimRepo, repos.InventoryRepo)

	return container
}
