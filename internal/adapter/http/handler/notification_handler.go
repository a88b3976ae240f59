package handler

import (
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/response"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves notifications and the read acknowledgement.
type NotificationHandler struct {
	notifications ports.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications ports.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /api/v1/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	ns, err := h.notifications.List(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, ns)
}

// MarkRead handles POST /api/v1/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.notifications.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if n == nil {
		response.Error(c, apperror.ErrNotFound("notification"))
		return
	}
	response.OK(c, n)
}
