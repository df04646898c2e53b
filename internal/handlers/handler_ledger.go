package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// ledgerHandler handles HTTP requests for ledger accounts and journal entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerLedgerRoutes registers routes for the chart of accounts and journal.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	accounts := rg.Group("/ledger-accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}

	journal := rg.Group("/journal-entries")
	{
		journal.POST("", h.createJournalEntry)
		journal.GET("", h.listJournalEntries)
		journal.GET("/:id", h.getJournalEntry)
		journal.PUT("/:id", h.updateJournalEntry)
		journal.DELETE("/:id", h.deleteJournalEntry)
	}
}

// createAccount godoc
// @Summary Create a ledger account
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateLedgerAccountRequest true "Account details"
// @Success 201 {object} dto.LedgerAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Account code already in use"
// @Security BearerAuth
// @Router /ledger-accounts [post]
func (h *ledgerHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateLedgerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.ledgerService.CreateAccount(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Ledger account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerAccountResponse(account))
}

func (h *ledgerHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Ledger account")
		return
	}

	resp := dto.ListLedgerAccountsResponse{Accounts: make([]dto.LedgerAccountResponse, len(accounts))}
	for i, a := range accounts {
		resp.Accounts[i] = dto.ToLedgerAccountResponse(&a)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ledgerHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	account, err := h.ledgerService.GetAccountByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Ledger account")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerAccountResponse(account))
}

func (h *ledgerHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateLedgerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.ledgerService.UpdateAccount(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Ledger account")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerAccountResponse(account))
}

func (h *ledgerHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.ledgerService.DeleteAccount(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Ledger account")
		return
	}

	c.Status(http.StatusNoContent)
}

// createJournalEntry godoc
// @Summary Post a journal entry
// @Description Posts a balanced double-entry record: total debits must equal total credits, the total must be positive, and every account must exist
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced or invalid entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *ledgerHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.ledgerService.CreateJournalEntry(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *ledgerHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	entries, err := h.ledgerService.ListJournalEntries(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Journal entry")
		return
	}

	resp := dto.ListJournalEntriesResponse{Entries: make([]dto.JournalEntryResponse, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&e)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ledgerHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	entry, err := h.ledgerService.GetJournalEntryByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateJournalEntry godoc
// @Summary Amend a journal entry
// @Description A supplied line set replaces the existing one and must satisfy the same balance rules as posting
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   id path string true "Journal entry ID"
// @Param   entry body dto.UpdateJournalEntryRequest true "Fields to update"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced or invalid entry"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Security BearerAuth
// @Router /journal-entries/{id} [put]
func (h *ledgerHandler) updateJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.ledgerService.UpdateJournalEntry(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *ledgerHandler) deleteJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.ledgerService.DeleteJournalEntry(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Journal entry")
		return
	}

	c.Status(http.StatusNoContent)
}
