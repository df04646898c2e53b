package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// hrService manages employees and their timesheets.
type hrService struct {
	hrRepo portsrepo.HRRepositoryFacade
}

// NewHRService creates a new instance of hrService.
func NewHRService(hrRepo portsrepo.HRRepositoryFacade) portssvc.HRSvcFacade {
	return &hrService{hrRepo: hrRepo}
}

var _ portssvc.HRSvcFacade = (*hrService)(nil)

// --- Employees ---

func (s *hrService) GetEmployeeByID(ctx context.Context, companyID string, employeeID string) (*domain.Employee, error) {
	return s.hrRepo.FindEmployeeByID(ctx, companyID, employeeID)
}

func (s *hrService) ListEmployees(ctx context.Context, companyID string, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.hrRepo.ListEmployees(ctx, companyID, limit, offset)
}

// CreateEmployee persists a new employee. The employee number is assigned by
// the repository from the company's sequence.
func (s *hrService) CreateEmployee(ctx context.Context, companyID string, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	now := time.Now().UTC()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		CompanyID:  companyID,
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	return s.hrRepo.SaveEmployee(ctx, employee)
}

func (s *hrService) UpdateEmployee(ctx context.Context, companyID string, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.hrRepo.FindEmployeeByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	employee.LastUpdatedAt = time.Now().UTC()
	employee.LastUpdatedBy = userID

	if err := s.hrRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *hrService) DeleteEmployee(ctx context.Context, companyID string, employeeID string, userID string) error {
	return s.hrRepo.DeleteEmployee(ctx, companyID, employeeID)
}

// --- Timesheets ---

func (s *hrService) GetTimesheetByID(ctx context.Context, companyID string, timesheetID string) (*domain.Timesheet, error) {
	return s.hrRepo.FindTimesheetByID(ctx, companyID, timesheetID)
}

func (s *hrService) ListTimesheets(ctx context.Context, companyID string, employeeID *string, limit int, offset int) ([]domain.Timesheet, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.hrRepo.ListTimesheets(ctx, companyID, employeeID, limit, offset)
}

func (s *hrService) CreateTimesheet(ctx context.Context, companyID string, req dto.CreateTimesheetRequest, userID string) (*domain.Timesheet, error) {
	if req.Hours.IsNegative() || req.Hours.IsZero() {
		return nil, fmt.Errorf("%w: timesheet hours must be positive", apperrors.ErrValidation)
	}

	// The employee must belong to the same company.
	if _, err := s.hrRepo.FindEmployeeByID(ctx, companyID, req.EmployeeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	timesheet := domain.Timesheet{
		TimesheetID: uuid.NewString(),
		CompanyID:   companyID,
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		Hours:       req.Hours,
		Project:     req.Project,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.hrRepo.SaveTimesheet(ctx, timesheet); err != nil {
		return nil, err
	}
	return &timesheet, nil
}

func (s *hrService) UpdateTimesheet(ctx context.Context, companyID string, timesheetID string, req dto.UpdateTimesheetRequest, userID string) (*domain.Timesheet, error) {
	timesheet, err := s.hrRepo.FindTimesheetByID(ctx, companyID, timesheetID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		timesheet.Date = *req.Date
	}
	if req.Hours != nil {
		if req.Hours.IsNegative() || req.Hours.IsZero() {
			return nil, fmt.Errorf("%w: timesheet hours must be positive", apperrors.ErrValidation)
		}
		timesheet.Hours = *req.Hours
	}
	if req.Project != nil {
		timesheet.Project = *req.Project
	}
	if req.Notes != nil {
		timesheet.Notes = *req.Notes
	}
	timesheet.LastUpdatedAt = time.Now().UTC()
	timesheet.LastUpdatedBy = userID

	if err := s.hrRepo.UpdateTimesheet(ctx, *timesheet); err != nil {
		return nil, err
	}
	return timesheet, nil
}

func (s *hrService) DeleteTimesheet(ctx context.Context, companyID string, timesheetID string, userID string) error {
	return s.hrRepo.DeleteTimesheet(ctx, companyID, timesheetID)
}
