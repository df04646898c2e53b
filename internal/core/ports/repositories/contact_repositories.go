package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ContactReader defines read operations for contact data
type ContactReader interface {
	// FindContactByID retrieves a contact within a company by its unique identifier.
	FindContactByID(ctx context.Context, companyID string, contactID string) (*domain.Contact, error)

	// ListContacts retrieves the contacts of a company ordered by name,
	// optionally filtered by contact type.
	ListContacts(ctx context.Context, companyID string, contactType *domain.ContactType, limit int, offset int) ([]domain.Contact, error)
}

// ContactWriter defines write operations for contact data
type ContactWriter interface {
	// SaveContact persists a new contact.
	SaveContact(ctx context.Context, contact domain.Contact) error

	// UpdateContact updates an existing contact's details.
	UpdateContact(ctx context.Context, contact domain.Contact) error

	// DeleteContact removes a contact from a company.
	DeleteContact(ctx context.Context, companyID string, contactID string) error
}

// ContactRepositoryFacade combines all contact-related repository interfaces
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}
