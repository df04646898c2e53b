package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/models"
	"github.com/finbooks/finbooks_backend/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// --- Accounts ---

const ledgerAccountColumns = `account_id, company_id, code, name, type,
       created_at, created_by, last_updated_at, last_updated_by`

func scanLedgerAccount(row pgx.Row) (*models.LedgerAccount, error) {
	var m models.LedgerAccount
	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.Code,
		&m.Name,
		&m.Type,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxLedgerRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE account_id = $1 AND company_id = $2;`
	m, err := scanLedgerAccount(r.Pool.QueryRow(ctx, query, accountID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger account by ID "+accountID, err)
	}
	account := mapping.ToDomainLedgerAccount(*m)
	return &account, nil
}

func (r *PgxLedgerRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.LedgerAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.LedgerAccount{}, nil
	}

	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE company_id = $1 AND account_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, companyID, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.LedgerAccount, len(accountIDs))
	for rows.Next() {
		m, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger account row", err)
		}
		accounts[m.AccountID] = mapping.ToDomainLedgerAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger account rows", err)
	}
	return accounts, nil
}

func (r *PgxLedgerRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.LedgerAccount, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts
		WHERE company_id = $1
		ORDER BY code
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger accounts for company "+companyID, err)
	}
	defer rows.Close()

	accounts := []domain.LedgerAccount{}
	for rows.Next() {
		m, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger account row", err)
		}
		accounts = append(accounts, mapping.ToDomainLedgerAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger account rows", err)
	}
	return accounts, nil
}

func (r *PgxLedgerRepository) SaveAccount(ctx context.Context, account domain.LedgerAccount) error {
	m := mapping.ToModelLedgerAccount(account)
	query := `
		INSERT INTO ledger_accounts (account_id, company_id, code, name, type,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		m.Code,
		m.Name,
		m.Type,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save ledger account", err)
	}
	return nil
}

func (r *PgxLedgerRepository) UpdateAccount(ctx context.Context, account domain.LedgerAccount) error {
	m := mapping.ToModelLedgerAccount(account)
	query := `
		UPDATE ledger_accounts
		SET code = $3,
		    name = $4,
		    type = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE account_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		m.Code,
		m.Name,
		m.Type,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update ledger account "+m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("ledger account " + m.AccountID + " not found for update")
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	query := `DELETE FROM ledger_accounts WHERE account_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, companyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to delete ledger account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("ledger account " + accountID + " not found for delete")
	}
	return nil
}

// --- Journal entries ---

func (r *PgxLedgerRepository) FindJournalEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, company_id, date, ref,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1 AND company_id = $2;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID, companyID).Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.Date,
		&m.Ref,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}

	lines, err := r.findJournalLines(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(m, lines)
	return &entry, nil
}

func (r *PgxLedgerRepository) findJournalLines(ctx context.Context, entryID string) ([]models.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, debit, credit, description
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.LineID, &l.EntryID, &l.AccountID, &l.Debit, &l.Credit, &l.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal lines", err)
	}
	return lines, nil
}

func (r *PgxLedgerRepository) ListJournalEntries(ctx context.Context, companyID string, limit int, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT entry_id, company_id, date, ref,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE company_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries for company "+companyID, err)
	}
	defer rows.Close()

	headers := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.CompanyID,
			&m.Date,
			&m.Ref,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, m := range headers {
		lines, err := r.findJournalLines(ctx, m.EntryID)
		if err != nil {
			return nil, err
		}
		entries[i] = mapping.ToDomainJournalEntry(m, lines)
	}
	return entries, nil
}

// SaveJournalEntry inserts the entry header and batches its lines in one
// database transaction. Balance validation happens in the service; the
// repository persists what it is given atomically.
func (r *PgxLedgerRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (entry_id, company_id, date, ref,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.EntryID,
		m.CompanyID,
		m.Date,
		m.Ref,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, debit, credit, description)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, l := range mapping.ToModelJournalLines(entry) {
		batch.Queue(lineQuery, l.LineID, l.EntryID, l.AccountID, l.Debit, l.Credit, l.Description)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for journal entry "+m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateJournalEntry rewrites the header and replaces the full line set in
// one database transaction.
func (r *PgxLedgerRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		UPDATE journal_entries
		SET date = $3,
		    ref = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE entry_id = $1 AND company_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		m.EntryID,
		m.CompanyID,
		m.Date,
		m.Ref,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal entry "+m.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal entry " + m.EntryID + " not found for update")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to clear lines for journal entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, debit, credit, description)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, l := range mapping.ToModelJournalLines(entry) {
		batch.Queue(lineQuery, l.LineID, l.EntryID, l.AccountID, l.Debit, l.Credit, l.Description)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for journal entry "+m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLedgerRepository) DeleteJournalEntry(ctx context.Context, companyID string, entryID string) error {
	query := `DELETE FROM journal_entries WHERE entry_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal entry " + entryID + " not found for delete")
	}
	return nil
}
