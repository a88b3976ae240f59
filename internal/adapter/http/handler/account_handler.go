package handler

import (
	"nexbank/internal/adapter/http/dto"
	"nexbank/internal/adapter/http/middleware"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the account listing and the dashboard summary.
type AccountHandler struct {
	accounts     ports.AccountRepository
	reportingSvc ports.ReportingService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts ports.AccountRepository, reportingSvc ports.ReportingService) *AccountHandler {
	return &AccountHandler{accounts: accounts, reportingSvc: reportingSvc}
}

// List handles GET /api/v1/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, accounts)
}

// Summary handles GET /api/v1/accounts/summary.
func (h *AccountHandler) Summary(c *gin.Context) {
	summary, err := h.reportingSvc.AccountSummary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AccountSummaryResponse{
		Accounts: summary.Accounts,
		Total:    summary.Total,
		Currency: summary.Currency,
		Masked:   summary.Masked,
	})
}
