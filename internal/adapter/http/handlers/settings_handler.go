package handlers

import (
	"log"
	"net/http"

	request "big_studio/internal/adapter/http/dto/request"
	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for per-user application settings.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	settings, err := h.usecase.Get(c.Request.Context(), user.ID, user.Username)
	if err != nil {
		log.Printf("[settings][handler] get failed owner=%s err=%v", user.ID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	var payload request.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.Update(c.Request.Context(), user.ID, payload.ToPatch())
	if err != nil {
		log.Printf("[settings][handler] update failed owner=%s err=%v", user.ID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, settings)
}
