package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/utils"
)

type PgxHRRepository struct {
	BaseRepository
}

func newPgxHRRepository(pool *pgxpool.Pool) portsrepo.HRRepositoryFacade {
	return &PgxHRRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HRRepositoryFacade = (*PgxHRRepository)(nil)

// --- Employees ---

const employeeColumns = `employee_id, company_id, employee_number, name, email, position, salary, hire_date,
       created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.CompanyID,
		&e.EmployeeNumber,
		&e.Name,
		&e.Email,
		&e.Position,
		&e.Salary,
		&e.HireDate,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxHRRepository) FindEmployeeByID(ctx context.Context, companyID string, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1 AND company_id = $2;`
	employee, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee by ID "+employeeID, err)
	}
	return employee, nil
}

func (r *PgxHRRepository) ListEmployees(ctx context.Context, companyID string, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE company_id = $1
		ORDER BY employee_number
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees for company "+companyID, err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}
	return employees, nil
}

// SaveEmployee inserts the employee, minting the employee number from the
// company's sequence inside the same database transaction.
func (r *PgxHRRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	seq, err := nextSequenceNumber(ctx, tx, employee.CompanyID, "employee")
	if err != nil {
		return nil, err
	}
	employee.EmployeeNumber = utils.FormatSequenceNumber("E", seq)

	query := `
		INSERT INTO employees (employee_id, company_id, employee_number, name, email, position, salary, hire_date,
		                       created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		employee.EmployeeID,
		employee.CompanyID,
		employee.EmployeeNumber,
		employee.Name,
		employee.Email,
		employee.Position,
		employee.Salary,
		employee.HireDate,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save employee", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *PgxHRRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET name = $3,
		    email = $4,
		    position = $5,
		    salary = $6,
		    hire_date = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE employee_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.CompanyID,
		employee.Name,
		employee.Email,
		employee.Position,
		employee.Salary,
		employee.HireDate,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update employee "+employee.EmployeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee " + employee.EmployeeID + " not found for update")
	}
	return nil
}

func (r *PgxHRRepository) DeleteEmployee(ctx context.Context, companyID string, employeeID string) error {
	query := `DELETE FROM employees WHERE employee_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, employeeID, companyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to delete employee "+employeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee " + employeeID + " not found for delete")
	}
	return nil
}

// --- Timesheets ---

const timesheetColumns = `timesheet_id, company_id, employee_id, date, hours, project, notes,
       created_at, created_by, last_updated_at, last_updated_by`

func scanTimesheet(row pgx.Row) (*domain.Timesheet, error) {
	var t domain.Timesheet
	err := row.Scan(
		&t.TimesheetID,
		&t.CompanyID,
		&t.EmployeeID,
		&t.Date,
		&t.Hours,
		&t.Project,
		&t.Notes,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxHRRepository) FindTimesheetByID(ctx context.Context, companyID string, timesheetID string) (*domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE timesheet_id = $1 AND company_id = $2;`
	ts, err := scanTimesheet(r.Pool.QueryRow(ctx, query, timesheetID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find timesheet by ID "+timesheetID, err)
	}
	return ts, nil
}

func (r *PgxHRRepository) ListTimesheets(ctx context.Context, companyID string, employeeID *string, limit int, offset int) ([]domain.Timesheet, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE company_id = $1`
	args := []any{companyID}
	if employeeID != nil {
		query += ` AND employee_id = $2 ORDER BY date DESC LIMIT $3 OFFSET $4;`
		args = append(args, *employeeID, limit, offset)
	} else {
		query += ` ORDER BY date DESC LIMIT $2 OFFSET $3;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query timesheets for company "+companyID, err)
	}
	defer rows.Close()

	timesheets := []domain.Timesheet{}
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan timesheet row", err)
		}
		timesheets = append(timesheets, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating timesheet rows", err)
	}
	return timesheets, nil
}

func (r *PgxHRRepository) SaveTimesheet(ctx context.Context, timesheet domain.Timesheet) error {
	query := `
		INSERT INTO timesheets (timesheet_id, company_id, employee_id, date, hours, project, notes,
		                        created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		timesheet.TimesheetID,
		timesheet.CompanyID,
		timesheet.EmployeeID,
		timesheet.Date,
		timesheet.Hours,
		timesheet.Project,
		timesheet.Notes,
		timesheet.CreatedAt,
		timesheet.CreatedBy,
		timesheet.LastUpdatedAt,
		timesheet.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrValidation
		}
		return apperrors.NewAppError(500, "failed to save timesheet", err)
	}
	return nil
}

func (r *PgxHRRepository) UpdateTimesheet(ctx context.Context, timesheet domain.Timesheet) error {
	query := `
		UPDATE timesheets
		SET employee_id = $3,
		    date = $4,
		    hours = $5,
		    project = $6,
		    notes = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE timesheet_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		timesheet.TimesheetID,
		timesheet.CompanyID,
		timesheet.EmployeeID,
		timesheet.Date,
		timesheet.Hours,
		timesheet.Project,
		timesheet.Notes,
		timesheet.LastUpdatedAt,
		timesheet.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrValidation
		}
		return apperrors.NewAppError(500, "failed to update timesheet "+timesheet.TimesheetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("timesheet " + timesheet.TimesheetID + " not found for update")
	}
	return nil
}

func (r *PgxHRRepository) DeleteTimesheet(ctx context.Context, companyID string, timesheetID string) error {
	query := `DELETE FROM timesheets WHERE timesheet_id = $1 AND company_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, timesheetID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete timesheet "+timesheetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("timesheet " + timesheetID + " not found for delete")
	}
	return nil
}
