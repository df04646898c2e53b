package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// assistantHandler handles HTTP requests for the AI query assistant.
type assistantHandler struct {
	assistantService portssvc.AssistantSvcFacade
}

// registerAssistantRoutes registers the assistant route.
func registerAssistantRoutes(rg *gin.RouterGroup, assistantService portssvc.AssistantSvcFacade) {
	h := &assistantHandler{assistantService: assistantService}

	ai := rg.Group("/ai")
	{
		ai.POST("/query", h.query)
	}
}

// query godoc
// @Summary Ask a question about the company's finances
// @Description Answers a natural-language question grounded on the company's own data
// @Tags ai
// @Accept  json
// @Produce  json
// @Param   query body dto.AIQueryRequest true "Question"
// @Success 200 {object} dto.AIQueryResponse
// @Failure 400 {object} map[string]string "Empty question"
// @Failure 502 {object} map[string]string "Assistant unavailable"
// @Security BearerAuth
// @Router /ai/query [post]
func (h *assistantHandler) query(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.AIQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	answer, err := h.assistantService.Query(c.Request.Context(), companyID, req.Question, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Assistant")
		return
	}

	c.JSON(http.StatusOK, dto.AIQueryResponse{Answer: answer})
}
