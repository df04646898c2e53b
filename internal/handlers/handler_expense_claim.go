package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// expenseClaimHandler handles HTTP requests related to expense claims.
type expenseClaimHandler struct {
	claimService portssvc.ExpenseClaimSvcFacade
}

// registerExpenseClaimRoutes registers routes related to expense claims.
func registerExpenseClaimRoutes(rg *gin.RouterGroup, claimService portssvc.ExpenseClaimSvcFacade) {
	h := &expenseClaimHandler{claimService: claimService}

	claims := rg.Group("/expense-claims")
	{
		claims.POST("", h.createClaim)
		claims.GET("", h.listClaims)
		claims.GET("/:id", h.getClaim)
		claims.PUT("/:id", h.updateClaim)
		claims.DELETE("/:id", h.deleteClaim)
		claims.POST("/:id/approve", h.approveClaim)
		claims.POST("/:id/reject", h.rejectClaim)
	}
}

// createClaim godoc
// @Summary File an expense claim
// @Description Creates a claim in the PENDING state
// @Tags expense-claims
// @Accept  json
// @Produce  json
// @Param   claim body dto.CreateExpenseClaimRequest true "Claim details"
// @Success 201 {object} dto.ExpenseClaimResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /expense-claims [post]
func (h *expenseClaimHandler) createClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateExpenseClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	claim, err := h.claimService.CreateClaim(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Expense claim")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseClaimResponse(claim))
}

// listClaims godoc
// @Summary List expense claims
// @Tags expense-claims
// @Produce  json
// @Param   status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} dto.ListExpenseClaimsResponse
// @Security BearerAuth
// @Router /expense-claims [get]
func (h *expenseClaimHandler) listClaims(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	var status *domain.ClaimStatus
	if v := c.Query("status"); v != "" {
		s := domain.ClaimStatus(v)
		status = &s
	}

	claims, err := h.claimService.ListClaims(c.Request.Context(), companyID, status, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Expense claim")
		return
	}

	resp := dto.ListExpenseClaimsResponse{Claims: make([]dto.ExpenseClaimResponse, len(claims))}
	for i, cl := range claims {
		resp.Claims[i] = dto.ToExpenseClaimResponse(&cl)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *expenseClaimHandler) getClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	claim, err := h.claimService.GetClaimByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Expense claim")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}

func (h *expenseClaimHandler) updateClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateExpenseClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	claim, err := h.claimService.UpdateClaim(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Expense claim")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}

func (h *expenseClaimHandler) deleteClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.claimService.DeleteClaim(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Expense claim")
		return
	}

	c.Status(http.StatusNoContent)
}

// approveClaim godoc
// @Summary Approve a pending expense claim
// @Description Flips the claim to APPROVED and pays the reimbursement from the named wallet, or the company default wallet when the body is empty
// @Tags expense-claims
// @Accept  json
// @Produce  json
// @Param   id path string true "Claim ID"
// @Param   approval body dto.ApproveClaimRequest false "Optional wallet override"
// @Success 200 {object} dto.ApproveClaimResponse
// @Failure 400 {object} map[string]string "No wallet available"
// @Failure 404 {object} map[string]string "Claim not found"
// @Failure 409 {object} map[string]string "Claim is not pending"
// @Security BearerAuth
// @Router /expense-claims/{id}/approve [post]
func (h *expenseClaimHandler) approveClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	// The body is optional; an absent or empty body means "use the default
	// wallet". Binding is skipped when there is nothing to read because gin
	// reports a nil body as a plain error rather than io.EOF.
	var req dto.ApproveClaimRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBindError(c, err)
			return
		}
	}

	claim, txn, err := h.claimService.ApproveClaim(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Expense claim")
		return
	}

	c.JSON(http.StatusOK, dto.ApproveClaimResponse{
		Claim:       dto.ToExpenseClaimResponse(claim),
		Transaction: dto.ToTransactionResponse(txn),
	})
}

// rejectClaim godoc
// @Summary Reject a pending expense claim
// @Tags expense-claims
// @Produce  json
// @Param   id path string true "Claim ID"
// @Success 200 {object} dto.ExpenseClaimResponse
// @Failure 404 {object} map[string]string "Claim not found"
// @Failure 409 {object} map[string]string "Claim is not pending"
// @Security BearerAuth
// @Router /expense-claims/{id}/reject [post]
func (h *expenseClaimHandler) rejectClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	claim, err := h.claimService.RejectClaim(c.Request.Context(), companyID, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Expense claim")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}
