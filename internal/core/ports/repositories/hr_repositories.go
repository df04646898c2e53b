package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee within a company by its unique identifier.
	FindEmployeeByID(ctx context.Context, companyID string, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves the employees of a company ordered by employee number.
	ListEmployees(ctx context.Context, companyID string, limit int, offset int) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee, assigning the next employee
	// number ("E-001" style) from the company's sequence.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeleteEmployee removes an employee from a company.
	DeleteEmployee(ctx context.Context, companyID string, employeeID string) error
}

// TimesheetReader defines read operations for timesheet data
type TimesheetReader interface {
	// FindTimesheetByID retrieves a timesheet entry within a company by its unique identifier.
	FindTimesheetByID(ctx context.Context, companyID string, timesheetID string) (*domain.Timesheet, error)

	// ListTimesheets retrieves timesheet entries of a company ordered by date
	// descending, optionally filtered by employee.
	ListTimesheets(ctx context.Context, companyID string, employeeID *string, limit int, offset int) ([]domain.Timesheet, error)
}

// TimesheetWriter defines write operations for timesheet data
type TimesheetWriter interface {
	// SaveTimesheet persists a new timesheet entry.
	SaveTimesheet(ctx context.Context, timesheet domain.Timesheet) error

	// UpdateTimesheet updates an existing timesheet entry.
	UpdateTimesheet(ctx context.Context, timesheet domain.Timesheet) error

	// DeleteTimesheet removes a timesheet entry from a company.
	DeleteTimesheet(ctx context.Context, companyID string, timesheetID string) error
}

// HRRepositoryFacade combines employee and timesheet repository interfaces
type HRRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	TimesheetReader
	TimesheetWriter
}
