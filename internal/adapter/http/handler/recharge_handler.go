package handler

import (
	"nexbank/internal/adapter/http/dto"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// RechargeHandler runs the mobile recharge flow and serves its catalogs.
type RechargeHandler struct {
	rechargeSvc ports.RechargeService
	catalog     ports.CatalogRepository
}

// NewRechargeHandler creates a new RechargeHandler.
func NewRechargeHandler(rechargeSvc ports.RechargeService, catalog ports.CatalogRepository) *RechargeHandler {
	return &RechargeHandler{rechargeSvc: rechargeSvc, catalog: catalog}
}

// Operators handles GET /api/v1/recharge/operators.
func (h *RechargeHandler) Operators(c *gin.Context) {
	operators, err := h.catalog.Operators(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, operators)
}

// Packages handles GET /api/v1/recharge/operators/:id/packages.
func (h *RechargeHandler) Packages(c *gin.Context) {
	operatorID := c.Param("id")
	operator, err := h.catalog.GetOperator(c.Request.Context(), operatorID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if operator == nil {
		response.Error(c, apperror.ErrNotFound("operator"))
		return
	}

	packages, err := h.catalog.Packages(c.Request.Context(), operatorID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, packages)
}

// Recharge handles POST /api/v1/recharge.
func (h *RechargeHandler) Recharge(c *gin.Context) {
	var req dto.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	receipt, err := h.rechargeSvc.Recharge(c.Request.Context(), ports.RechargeRequest{
		OperatorID:   req.OperatorID,
		MobileNumber: req.MobileNumber,
		PackageID:    req.PackageID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, receipt)
}
