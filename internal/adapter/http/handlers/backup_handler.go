package handlers

import (
	"errors"
	"log"
	"net/http"

	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// BackupHandler handles whole-dataset export and import.

type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

func (h *BackupHandler) Export(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	envelope, err := h.usecase.Export(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[backup][handler] export failed owner=%s err=%v", user.ID, err)
		appErr := mapBackupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, envelope)
}

// Import replaces the user's whole dataset with the uploaded envelope.
func (h *BackupHandler) Import(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[backup][handler] import start owner=%s payload_len=%d", user.ID, len(raw))

	envelope, err := h.usecase.Import(c.Request.Context(), user.ID, raw)
	if err != nil {
		log.Printf("[backup][handler] import failed owner=%s err=%v", user.ID, err)
		appErr := mapBackupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, envelope)
}

func mapBackupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBackup):
		return pkg.NewDomainErrorSimple("INVALID_BACKUP", "Invalid backup payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
