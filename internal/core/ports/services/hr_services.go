package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// EmployeeSvc defines operations for employee data
type EmployeeSvc interface {
	// GetEmployeeByID retrieves a specific employee by its unique identifier.
	GetEmployeeByID(ctx context.Context, companyID string, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves the employees of a company.
	ListEmployees(ctx context.Context, companyID string, limit int, offset int) ([]domain.Employee, error)

	// CreateEmployee persists a new employee with a generated employee number.
	CreateEmployee(ctx context.Context, companyID string, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, companyID string, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)

	// DeleteEmployee removes an employee from a company.
	DeleteEmployee(ctx context.Context, companyID string, employeeID string, userID string) error
}

// TimesheetSvc defines operations for timesheet data
type TimesheetSvc interface {
	// GetTimesheetByID retrieves a specific timesheet entry by its unique identifier.
	GetTimesheetByID(ctx context.Context, companyID string, timesheetID string) (*domain.Timesheet, error)

	// ListTimesheets retrieves the timesheet entries of a company, optionally
	// filtered by employee.
	ListTimesheets(ctx context.Context, companyID string, employeeID *string, limit int, offset int) ([]domain.Timesheet, error)

	// CreateTimesheet persists a new timesheet entry.
	CreateTimesheet(ctx context.Context, companyID string, req dto.CreateTimesheetRequest, userID string) (*domain.Timesheet, error)

	// UpdateTimesheet updates an existing timesheet entry.
	UpdateTimesheet(ctx context.Context, companyID string, timesheetID string, req dto.UpdateTimesheetRequest, userID string) (*domain.Timesheet, error)

	// DeleteTimesheet removes a timesheet entry from a company.
	DeleteTimesheet(ctx context.Context, companyID string, timesheetID string, userID string) error
}

// HRSvcFacade combines employee and timesheet service interfaces
type HRSvcFacade interface {
	EmployeeSvc
	TimesheetSvc
}
