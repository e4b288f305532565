package handlers

import (
	"errors"
	"log"
	"net/http"

	request "big_studio/internal/adapter/http/dto/request"
	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for the client directory.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	clients, err := h.usecase.List(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[client][handler] list failed owner=%s err=%v", user.ID, err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	clientID := c.Param("client_id")

	client, err := h.usecase.GetByID(c.Request.Context(), user.ID, clientID)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	var payload request.ClientCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), user.ID, payload.ToParams())
	if err != nil {
		log.Printf("[client][handler] create failed owner=%s err=%v", user.ID, err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[client][handler] create success client_id=%s owner=%s", client.ID, user.ID)

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	clientID := c.Param("client_id")
	var payload request.ClientUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), user.ID, payload.ToEntity(clientID))
	if err != nil {
		log.Printf("[client][handler] update failed client_id=%s err=%v", clientID, err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	clientID := c.Param("client_id")

	if err := h.usecase.Delete(c.Request.Context(), user.ID, clientID); err != nil {
		log.Printf("[client][handler] delete failed client_id=%s err=%v", clientID, err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
