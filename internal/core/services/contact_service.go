package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// contactService manages CRM contacts: leads, customers and suppliers.
type contactService struct {
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactService creates a new instance of contactService.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) GetContactByID(ctx context.Context, companyID string, contactID string) (*domain.Contact, error) {
	return s.contactRepo.FindContactByID(ctx, companyID, contactID)
}

func (s *contactService) ListContacts(ctx context.Context, companyID string, contactType *domain.ContactType, limit int, offset int) ([]domain.Contact, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.contactRepo.ListContacts(ctx, companyID, contactType, limit, offset)
}

func (s *contactService) CreateContact(ctx context.Context, companyID string, req dto.CreateContactRequest, userID string) (*domain.Contact, error) {
	stage := domain.StageNew
	if req.Stage != "" {
		stage = domain.PipelineStage(req.Stage)
	}

	now := time.Now().UTC()
	contact := domain.Contact{
		ContactID: uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Business:  req.Business,
		Type:      domain.ContactType(req.Type),
		Stage:     stage,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *contactService) UpdateContact(ctx context.Context, companyID string, contactID string, req dto.UpdateContactRequest, userID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, companyID, contactID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Business != nil {
		contact.Business = *req.Business
	}
	if req.Type != nil {
		contact.Type = domain.ContactType(*req.Type)
	}
	if req.Stage != nil {
		contact.Stage = domain.PipelineStage(*req.Stage)
	}
	contact.LastUpdatedAt = time.Now().UTC()
	contact.LastUpdatedBy = userID

	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, companyID string, contactID string, userID string) error {
	return s.contactRepo.DeleteContact(ctx, companyID, contactID)
}
