package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is an HR record. EmployeeNumber is a human-readable per-company
// sequence of the form "E-NNN".
type Employee struct {
	EmployeeID     string          `json:"employeeID"` // Primary Key (UUID)
	CompanyID      string          `json:"companyID"`
	EmployeeNumber string          `json:"employeeNumber"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Position       string          `json:"position"`
	Salary         decimal.Decimal `json:"salary"`
	HireDate       time.Time       `json:"hireDate"`
	AuditFields
}

// Timesheet records hours worked by an employee on a given date.
type Timesheet struct {
	TimesheetID string          `json:"timesheetID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"`
	EmployeeID  string          `json:"employeeID"`
	Date        time.Time       `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Project     string          `json:"project"`
	Notes       string          `json:"notes"`
	AuditFields
}
