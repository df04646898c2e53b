package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// contactHandler handles HTTP requests related to CRM contacts.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// registerContactRoutes registers routes related to contacts.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:id", h.getContact)
		contacts.PUT("/:id", h.updateContact)
		contacts.DELETE("/:id", h.deleteContact)
	}
}

// createContact godoc
// @Summary Create a contact
// @Tags contacts
// @Accept  json
// @Produce  json
// @Param   contact body dto.CreateContactRequest true "Contact details"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /contacts [post]
func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Contact")
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

// listContacts godoc
// @Summary List contacts
// @Description Lists the company's contacts, optionally filtered by type
// @Tags contacts
// @Produce  json
// @Param   type query string false "Filter by type" Enums(LEAD, CUSTOMER, SUPPLIER)
// @Success 200 {object} dto.ListContactsResponse
// @Security BearerAuth
// @Router /contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	limit, offset := getPaginationParams(c)

	var contactType *domain.ContactType
	if v := c.Query("type"); v != "" {
		t := domain.ContactType(v)
		contactType = &t
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), companyID, contactType, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Contact")
		return
	}

	resp := dto.ListContactsResponse{Contacts: make([]dto.ContactResponse, len(contacts))}
	for i, ct := range contacts {
		resp.Contacts[i] = dto.ToContactResponse(&ct)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *contactHandler) getContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)

	contact, err := h.contactService.GetContactByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Contact")
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *contactHandler) updateContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Contact")
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *contactHandler) deleteContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, _ := middleware.GetCompanyIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.contactService.DeleteContact(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Contact")
		return
	}

	c.Status(http.StatusNoContent)
}
