package dto

import "github.com/finbooks/finbooks_backend/internal/core/domain"

// CreateContactRequest defines the payload for creating a CRM contact.
type CreateContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Business string `json:"business"`
	Type     string `json:"type" binding:"required,oneof=LEAD CUSTOMER SUPPLIER"`
	Stage    string `json:"stage" binding:"omitempty,oneof=NEW CONTACTED PROPOSAL NEGOTIATION WON LOST"`
}

// UpdateContactRequest defines the payload for updating a contact.
type UpdateContactRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Business *string `json:"business"`
	Type     *string `json:"type" binding:"omitempty,oneof=LEAD CUSTOMER SUPPLIER"`
	Stage    *string `json:"stage" binding:"omitempty,oneof=NEW CONTACTED PROPOSAL NEGOTIATION WON LOST"`
}

// ContactResponse defines the contact data returned by the API.
type ContactResponse struct {
	ContactID string `json:"contactID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Business  string `json:"business"`
	Type      string `json:"type"`
	Stage     string `json:"stage"`
}

// ListContactsResponse wraps a list of contacts.
type ListContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

// ToContactResponse converts a domain.Contact to a ContactResponse DTO.
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID: c.ContactID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Business:  c.Business,
		Type:      string(c.Type),
		Stage:     string(c.Stage),
	}
}
