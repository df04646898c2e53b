package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// hrHandler handles HTTP requests for employees and timesheets.
type hrHandler struct {
	hrService portssvc.HRSvcFacade
}

// registerHRRoutes registers routes for employees and timesheets.
func registerHRRoutes(rg *gin.RouterGroup, hrService portssvc.HRSvcFacade) {
	h := &hrHandler{hrService: hrService}

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}

	timesheets := rg.Group("/timesheets")
	{
		timesheets.POST("", h.createTimesheet)
		timesheets.GET("", h.listTimesheets)
		timesheets.GET("/:id", h.getTimesheet)
		timesheets.PUT("/:id", h.updateTimesheet)
		timesheets.DELETE("/:id", h.deleteTimesheet)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Description Creates an employee with a server-generated employee number
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /employees [post]
func (h *hrHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.hrService.CreateEmployee(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

func (h *hrHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	employees, err := h.hrService.ListEmployees(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Employee")
		return
	}

	resp := dto.ListEmployeesResponse{Employees: make([]dto.EmployeeResponse, len(employees))}
	for i, e := range employees {
		resp.Employees[i] = dto.ToEmployeeResponse(&e)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *hrHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	employee, err := h.hrService.GetEmployeeByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *hrHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.hrService.UpdateEmployee(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *hrHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.hrService.DeleteEmployee(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Employee")
		return
	}

	c.Status(http.StatusNoContent)
}

// createTimesheet godoc
// @Summary Record a timesheet entry
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   timesheet body dto.CreateTimesheetRequest true "Timesheet details"
// @Success 201 {object} dto.TimesheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /timesheets [post]
func (h *hrHandler) createTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	timesheet, err := h.hrService.CreateTimesheet(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Timesheet")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTimesheetResponse(timesheet))
}

// listTimesheets godoc
// @Summary List timesheet entries
// @Tags timesheets
// @Produce  json
// @Param   employeeID query string false "Filter by employee"
// @Success 200 {object} dto.ListTimesheetsResponse
// @Security BearerAuth
// @Router /timesheets [get]
func (h *hrHandler) listTimesheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	var employeeID *string
	if v := c.Query("employeeID"); v != "" {
		employeeID = &v
	}

	timesheets, err := h.hrService.ListTimesheets(c.Request.Context(), companyID, employeeID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Timesheet")
		return
	}

	resp := dto.ListTimesheetsResponse{Timesheets: make([]dto.TimesheetResponse, len(timesheets))}
	for i, t := range timesheets {
		resp.Timesheets[i] = dto.ToTimesheetResponse(&t)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *hrHandler) getTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	timesheet, err := h.hrService.GetTimesheetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Timesheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimesheetResponse(timesheet))
}

func (h *hrHandler) updateTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	timesheet, err := h.hrService.UpdateTimesheet(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Timesheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimesheetResponse(timesheet))
}

func (h *hrHandler) deleteTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.hrService.DeleteTimesheet(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Timesheet")
		return
	}

	c.Status(http.StatusNoContent)
}
