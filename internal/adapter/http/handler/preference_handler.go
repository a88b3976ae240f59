package handler

import (
	"nexbank/internal/adapter/http/dto"
	"nexbank/internal/adapter/http/middleware"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler serves the per-user UI preferences.
type PreferenceHandler struct {
	prefSvc ports.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(prefSvc ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefSvc: prefSvc}
}

// Get handles GET /api/v1/preferences.
func (h *PreferenceHandler) Get(c *gin.Context) {
	prefs, err := h.prefSvc.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, prefs)
}

// SetLanguage handles PUT /api/v1/preferences/language.
func (h *PreferenceHandler) SetLanguage(c *gin.Context) {
	var req dto.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	prefs, err := h.prefSvc.SetLanguage(c.Request.Context(), middleware.UserID(c), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, prefs)
}

// SetTheme handles PUT /api/v1/preferences/theme.
func (h *PreferenceHandler) SetTheme(c *gin.Context) {
	var req dto.SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	prefs, err := h.prefSvc.SetTheme(c.Request.Context(), middleware.UserID(c), req.Theme)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, prefs)
}

// ToggleBalance handles POST /api/v1/preferences/balance-visibility/toggle.
func (h *PreferenceHandler) ToggleBalance(c *gin.Context) {
	show, err := h.prefSvc.ToggleShowBalance(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ShowBalanceResponse{ShowBalance: show})
}
