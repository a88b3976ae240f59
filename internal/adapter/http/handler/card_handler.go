package handler

import (
	"nexbank/internal/adapter/http/dto"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// CardHandler serves cards and the freeze toggle.
type CardHandler struct {
	cards ports.CardRepository
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cards ports.CardRepository) *CardHandler {
	return &CardHandler{cards: cards}
}

// List handles GET /api/v1/cards.
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.cards.List(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, cards)
}

// Freeze handles POST /api/v1/cards/:id/freeze.
func (h *CardHandler) Freeze(c *gin.Context) {
	var req dto.FreezeCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	card, err := h.cards.SetFrozen(c.Request.Context(), c.Param("id"), *req.Frozen)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if card == nil {
		response.Error(c, apperror.ErrNotFound("card"))
		return
	}
	response.OK(c, card)
}
