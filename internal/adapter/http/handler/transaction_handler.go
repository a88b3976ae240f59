package handler

import (
	"strconv"

	"nexbank/internal/adapter/http/dto"
	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves transaction history.
type TransactionHandler struct {
	reportingSvc ports.ReportingService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(reportingSvc ports.ReportingService) *TransactionHandler {
	return &TransactionHandler{reportingSvc: reportingSvc}
}

// List handles GET /api/v1/transactions.
// Query params: direction (credit|debit), category, search, page, page_size.
func (h *TransactionHandler) List(c *gin.Context) {
	params := ports.TransactionListParams{Page: 1, PageSize: 20}

	if v := c.Query("direction"); v != "" {
		if v != string(domain.TransactionCredit) && v != string(domain.TransactionDebit) {
			response.Error(c, apperror.Validation("direction must be credit or debit"))
			return
		}
		d := domain.TransactionDirection(v)
		params.Direction = &d
	}
	if v := c.Query("category"); v != "" {
		params.Category = &v
	}
	if v := c.Query("search"); v != "" {
		params.Search = &v
	}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			response.Error(c, apperror.Validation("page must be a positive integer"))
			return
		}
		params.Page = n
	}
	if v := c.Query("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			response.Error(c, apperror.Validation("page_size must be between 1 and 100"))
			return
		}
		params.PageSize = n
	}

	txs, total, err := h.reportingSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := int(total) / params.PageSize
	if int(total)%params.PageSize > 0 {
		totalPages++
	}

	response.OK(c, dto.TransactionListResponse{
		Items:      txs,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	})
}
