package handler

import (
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContactHandler serves the transfer beneficiary list.
type ContactHandler struct {
	contacts ports.ContactRepository
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts ports.ContactRepository) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// List handles GET /api/v1/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contacts.List(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, contacts)
}
