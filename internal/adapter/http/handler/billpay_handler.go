package handler

import (
	"nexbank/internal/adapter/http/dto"
	"nexbank/internal/adapter/http/middleware"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// BillPayHandler runs the two-phase bill payment flow.
type BillPayHandler struct {
	billPaySvc ports.BillPayService
	catalog    ports.CatalogRepository
}

// NewBillPayHandler creates a new BillPayHandler.
func NewBillPayHandler(billPaySvc ports.BillPayService, catalog ports.CatalogRepository) *BillPayHandler {
	return &BillPayHandler{billPaySvc: billPaySvc, catalog: catalog}
}

// Providers handles GET /api/v1/billpay/providers?category=electricity.
func (h *BillPayHandler) Providers(c *gin.Context) {
	providers, err := h.catalog.Providers(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, providers)
}

// Fetch handles POST /api/v1/billpay/fetch.
func (h *BillPayHandler) Fetch(c *gin.Context) {
	var req dto.BillFetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	invoice, err := h.billPaySvc.FetchBill(c.Request.Context(), middleware.UserID(c), req.ProviderID, req.ConsumerNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, invoice)
}

// Pay handles POST /api/v1/billpay/pay.
func (h *BillPayHandler) Pay(c *gin.Context) {
	receipt, err := h.billPaySvc.PayBill(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, receipt)
}
