package handler

import (
	"net/http"

	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler turns a receipt back into a printable document. Receipts
// are never stored server-side, so the client posts the one it holds.
type ReceiptHandler struct {
	renderer ports.ReceiptRenderer
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(renderer ports.ReceiptRenderer) *ReceiptHandler {
	return &ReceiptHandler{renderer: renderer}
}

// Print handles POST /api/v1/receipts/print.
func (h *ReceiptHandler) Print(c *gin.Context) {
	var receipt domain.Receipt
	if err := c.ShouldBindJSON(&receipt); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	html, err := h.renderer.RenderPrintHTML(&receipt)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
