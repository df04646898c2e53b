package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// ContactReaderSvc defines read operations for contact data
type ContactReaderSvc interface {
	// GetContactByID retrieves a specific contact by its unique identifier.
	GetContactByID(ctx context.Context, companyID string, contactID string) (*domain.Contact, error)

	// ListContacts retrieves the contacts of a company, optionally filtered
	// by contact type.
	ListContacts(ctx context.Context, companyID string, contactType *domain.ContactType, limit int, offset int) ([]domain.Contact, error)
}

// ContactWriterSvc defines write operations for contact data
type ContactWriterSvc interface {
	// CreateContact persists a new contact.
	CreateContact(ctx context.Context, companyID string, req dto.CreateContactRequest, userID string) (*domain.Contact, error)

	// UpdateContact updates an existing contact's details.
	UpdateContact(ctx context.Context, companyID string, contactID string, req dto.UpdateContactRequest, userID string) (*domain.Contact, error)

	// DeleteContact removes a contact from a company.
	DeleteContact(ctx context.Context, companyID string, contactID string, userID string) error
}

// ContactSvcFacade combines all contact-related service interfaces
type ContactSvcFacade interface {
	ContactReaderSvc
	ContactWriterSvc
}
