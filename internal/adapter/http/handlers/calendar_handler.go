package handlers

import (
	"errors"
	"log"
	"net/http"

	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for the derived calendar.

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

func (h *CalendarHandler) ListEvents(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	events, err := h.usecase.ListEvents(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[calendar][handler] list failed owner=%s err=%v", user.ID, err)
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *CalendarHandler) SyncEvents(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	log.Printf("[calendar][handler] sync start owner=%s", user.ID)

	events, err := h.usecase.Sync(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[calendar][handler] sync failed owner=%s err=%v", user.ID, err)
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *CalendarHandler) Connect(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	settings, err := h.usecase.Connect(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[calendar][handler] connect failed owner=%s err=%v", user.ID, err)
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *CalendarHandler) Disconnect(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	settings, err := h.usecase.Disconnect(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[calendar][handler] disconnect failed owner=%s err=%v", user.ID, err)
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, settings)
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCalendarNotConnected):
		return pkg.NewDomainErrorSimple("CALENDAR_NOT_CONNECTED", "Calendar is not connected", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
