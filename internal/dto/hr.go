package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the payload for creating an employee.
// The employee number ("E-NNN") is generated server-side.
type CreateEmployeeRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Position string          `json:"position" binding:"required"`
	Salary   decimal.Decimal `json:"salary"`
	HireDate time.Time       `json:"hireDate" binding:"required"`
}

// UpdateEmployeeRequest defines the payload for updating an employee.
type UpdateEmployeeRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Position *string          `json:"position"`
	Salary   *decimal.Decimal `json:"salary"`
}

// EmployeeResponse defines the employee data returned by the API.
type EmployeeResponse struct {
	EmployeeID     string          `json:"employeeID"`
	EmployeeNumber string          `json:"employeeNumber"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Position       string          `json:"position"`
	Salary         decimal.Decimal `json:"salary"`
	HireDate       time.Time       `json:"hireDate"`
}

// ListEmployeesResponse wraps a list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to an EmployeeResponse DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:     e.EmployeeID,
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Email:          e.Email,
		Position:       e.Position,
		Salary:         e.Salary,
		HireDate:       e.HireDate,
	}
}

// CreateTimesheetRequest defines the payload for recording a timesheet.
type CreateTimesheetRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
	Hours      decimal.Decimal `json:"hours" binding:"required"`
	Project    string          `json:"project"`
	Notes      string          `json:"notes"`
}

// UpdateTimesheetRequest defines the payload for updating a timesheet.
type UpdateTimesheetRequest struct {
	Date    *time.Time       `json:"date"`
	Hours   *decimal.Decimal `json:"hours"`
	Project *string          `json:"project"`
	Notes   *string          `json:"notes"`
}

// TimesheetResponse defines the timesheet data returned by the API.
type TimesheetResponse struct {
	TimesheetID string          `json:"timesheetID"`
	EmployeeID  string          `json:"employeeID"`
	Date        time.Time       `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Project     string          `json:"project"`
	Notes       string          `json:"notes"`
}

// ListTimesheetsResponse wraps a list of timesheets.
type ListTimesheetsResponse struct {
	Timesheets []TimesheetResponse `json:"timesheets"`
}

// ToTimesheetResponse converts a domain.Timesheet to a TimesheetResponse DTO.
func ToTimesheetResponse(t *domain.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		TimesheetID: t.TimesheetID,
		EmployeeID:  t.EmployeeID,
		Date:        t.Date,
		Hours:       t.Hours,
		Project:     t.Project,
		Notes:       t.Notes,
	}
}
