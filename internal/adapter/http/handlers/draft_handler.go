package handlers

import (
	"errors"
	"log"
	"net/http"

	request "big_studio/internal/adapter/http/dto/request"
	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// DraftHandler handles HTTP requests for draft notes and scripts.

type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

func (h *DraftHandler) ListDrafts(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	drafts, err := h.usecase.List(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[draft][handler] list failed owner=%s err=%v", user.ID, err)
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, drafts)
}

func (h *DraftHandler) CreateDraft(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	var payload request.DraftCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.Create(c.Request.Context(), user.ID, payload.Title, entities.DraftType(payload.Type))
	if err != nil {
		log.Printf("[draft][handler] create failed owner=%s err=%v", user.ID, err)
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	draftID := c.Param("draft_id")
	var payload request.DraftUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.Update(c.Request.Context(), user.ID, payload.ToEntity(draftID))
	if err != nil {
		log.Printf("[draft][handler] update failed draft_id=%s err=%v", draftID, err)
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	draftID := c.Param("draft_id")

	if err := h.usecase.Delete(c.Request.Context(), user.ID, draftID); err != nil {
		log.Printf("[draft][handler] delete failed draft_id=%s err=%v", draftID, err)
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID),
		errors.Is(err, usecase.ErrInvalidDraftTitle),
		errors.Is(err, usecase.ErrInvalidDraftType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
