package handlers

import (
	"errors"
	"log"
	"net/http"

	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for derived notifications.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	notifications, err := h.usecase.List(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[notification][handler] list failed owner=%s err=%v", user.ID, err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	notificationID := c.Param("notification_id")

	if err := h.usecase.MarkAsRead(c.Request.Context(), user.ID, notificationID); err != nil {
		log.Printf("[notification][handler] mark-read failed notification_id=%s err=%v", notificationID, err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
