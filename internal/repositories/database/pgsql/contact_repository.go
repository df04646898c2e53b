package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
)

type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

const contactColumns = `contact_id, company_id, name, email, phone, business, type, stage,
       created_at, created_by, last_updated_at, last_updated_by`

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ContactID,
		&c.CompanyID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Business,
		&c.Type,
		&c.Stage,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxContactRepository) FindContactByID(ctx context.Context, companyID string, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1 AND company_id = $2;`
	contact, err := scanContact(r.Pool.QueryRow(ctx, query, contactID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find contact by ID "+contactID, err)
	}
	return contact, nil
}

func (r *PgxContactRepository) ListContacts(ctx context.Context, companyID string, contactType *domain.ContactType, limit int, offset int) ([]domain.Contact, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE company_id = $1`
	args := []any{companyID}
	if contactType != nil {
		query += ` AND type = $2 ORDER BY name LIMIT $3 OFFSET $4;`
		args = append(args, *contactType, limit, offset)
	} else {
		query += ` ORDER BY name LIMIT $2 OFFSET $3;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query contacts for company "+companyID, err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan contact row", err)
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating contact rows", err)
	}
	return contacts, nil
}

func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	query := `
		INSERT INTO contacts (contact_id, company_id, name, email, phone, business, type, stage,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		contact.ContactID,
		contact.CompanyID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Business,
		contact.Type,
		contact.Stage,
		contact.CreatedAt,
		contact.CreatedBy,
		contact.LastUpdatedAt,
		contact.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save contact", err)
	}
	return nil
}

func (r *PgxContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	query := `
		UPDATE contacts
		SET name = $3,
		    email = $4,
		    phone = $5,
		    business = $6,
		    type = $7,
		    stage = $8,
		    last_updated_at = $9,
		    last_updated_by = $10
		WHERE contact_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		contact.ContactID,
		contact.CompanyID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Business,
		contact.Type,
		contact.Stage,
		contact.LastUpdatedAt,
		contact.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update contact "+contact.ContactID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("contact " + contact.ContactID + " not found for update")
	}
	return nil
}

func (r *PgxContactRepository) DeleteContact(ctx context.Context, companyID string, contactID string) error {
	query := `DELETE FROM contacts WHERE contact_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, contactID, companyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to delete contact "+contactID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("contact " + contactID + " not found for delete")
	}
	return nil
}
