package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// goalHandler handles HTTP requests related to financial goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// registerGoalRoutes registers routes related to goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := &goalHandler{goalService: goalService}

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
		goals.POST("/:id/contribute", h.contribute)
	}
}

// createGoal godoc
// @Summary Create a financial goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Goal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	goals, err := h.goalService.ListGoals(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Goal")
		return
	}

	resp := dto.ListGoalsResponse{Goals: make([]dto.GoalResponse, len(goals))}
	for i, g := range goals {
		resp.Goals[i] = dto.ToGoalResponse(&g)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	goal, err := h.goalService.GetGoalByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.goalService.DeleteGoal(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Goal")
		return
	}

	c.Status(http.StatusNoContent)
}

// contribute godoc
// @Summary Contribute to a goal from a wallet
// @Description Increments the goal and debits the wallet atomically, recording an internal transfer transaction
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   id path string true "Goal ID"
// @Param   contribution body dto.ContributeRequest true "Contribution details"
// @Success 200 {object} dto.ContributionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Goal or wallet not found"
// @Security BearerAuth
// @Router /goals/{id}/contribute [post]
func (h *goalHandler) contribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, txn, err := h.goalService.Contribute(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Goal")
		return
	}

	c.JSON(http.StatusOK, dto.ContributionResponse{
		Goal:        dto.ToGoalResponse(goal),
		Transaction: dto.ToTransactionResponse(txn),
	})
}
