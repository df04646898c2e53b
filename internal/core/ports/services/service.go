package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Company      CompanySvcFacade
	User         UserSvcFacade
	Wallet       WalletSvcFacade
	Transaction  TransactionSvcFacade
	Contact      ContactSvcFacade
	HR           HRSvcFacade
	ExpenseClaim ExpenseClaimSvcFacade
	Goal         GoalSvcFacade
	Budget       BudgetSvcFacade
	Inventory    InventorySvcFacade
	Invoice      InvoiceSvcFacade
	Ledger       LedgerSvcFacade
	Assistant    AssistantSvcFacade
}
