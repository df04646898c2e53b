package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:      newPgxCompanyRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		WalletRepo:       newPgxWalletRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		ContactRepo:      newPgxContactRepository(dbPool),
		HRRepo:           newPgxHRRepository(dbPool),
		ExpenseClaimRepo: newPgxExpenseClaimRepository(dbPool),
		GoalRepo:         newPgxGoalRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
		InventoryRepo:    newPgxInventoryRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool),
		LedgerRepo:       newPgxLedgerRepository(dbPool),
	}
}
