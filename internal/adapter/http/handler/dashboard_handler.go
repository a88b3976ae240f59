package handler

import (
	"nexbank/internal/adapter/http/dto"
	"nexbank/internal/core/ports"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the spending chart aggregates.
type DashboardHandler struct {
	reportingSvc ports.ReportingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportingSvc ports.ReportingService) *DashboardHandler {
	return &DashboardHandler{reportingSvc: reportingSvc}
}

// Spending handles GET /api/v1/dashboard/spending.
func (h *DashboardHandler) Spending(c *gin.Context) {
	overview, err := h.reportingSvc.SpendingOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SpendingOverviewResponse{
		Monthly:    overview.Monthly,
		ByCategory: overview.ByCategory,
	})
}
