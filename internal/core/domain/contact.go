package domain

// ContactType distinguishes how a contact relates to the company.
type ContactType string

const (
	ContactLead     ContactType = "LEAD"
	ContactCustomer ContactType = "CUSTOMER"
	ContactSupplier ContactType = "SUPPLIER"
)

// PipelineStage tracks a lead through the sales pipeline.
type PipelineStage string

const (
	StageNew         PipelineStage = "NEW"
	StageContacted   PipelineStage = "CONTACTED"
	StageProposal    PipelineStage = "PROPOSAL"
	StageNegotiation PipelineStage = "NEGOTIATION"
	StageWon         PipelineStage = "WON"
	StageLost        PipelineStage = "LOST"
)

// Contact is a CRM record: a lead, customer or supplier.
type Contact struct {
	ContactID string        `json:"contactID"` // Primary Key (UUID)
	CompanyID string        `json:"companyID"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Business  string        `json:"business"` // The contact's own company name
	Type      ContactType   `json:"type"`
	Stage     PipelineStage `json:"stage"` // Meaningful for leads
	AuditFields
}
