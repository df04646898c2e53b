package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CompanyRepo      CompanyRepositoryFacade
	UserRepo         UserRepositoryFacade
	WalletRepo       WalletRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	ContactRepo      ContactRepositoryFacade
	HRRepo           HRRepositoryFacade
	ExpenseClaimRepo ExpenseClaimRepositoryFacade
	GoalRepo         GoalRepositoryFacade
	BudgetRepo       BudgetRepositoryFacade
	InventoryRepo    InventoryRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	LedgerRepo       LedgerRepositoryFacade
}
