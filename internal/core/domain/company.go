package domain

// Company is the unit of data isolation. Every business entity carries a
// CompanyID foreign key, and every read/write is scoped to the caller's
// company as derived from the authenticated session.
type Company struct {
	CompanyID       string  `json:"companyID"` // Primary Key (UUID)
	Name            string  `json:"name"`
	DefaultWalletID *string `json:"defaultWalletID"` // Wallet debited by expense-claim approvals when no wallet is given
	CurrencyCode    string  `json:"currencyCode"`    // Company base currency (e.g. "USD")
	AuditFields
}
