package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// companyHandler handles HTTP requests for the caller's own company.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// registerCompanyRoutes registers routes for company settings. Reads are
// open to any authenticated user; writes require the admin role.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := &companyHandler{companyService: companyService}

	rg.GET("/company", h.getCompany)
	rg.PUT("/company", middleware.RequireAdmin(), h.updateCompany)
}

// getCompany godoc
// @Summary Get the caller's company
// @Tags company
// @Produce  json
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /company [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	company, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update company settings
// @Description Changes the company name, base currency, or default wallet. Admin only.
// @Tags company
// @Accept  json
// @Produce  json
// @Param   company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /company [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), companyID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
