package handlers

import (
	"errors"
	"log"
	"net/http"

	request "big_studio/internal/adapter/http/dto/request"
	response "big_studio/internal/adapter/http/dto/response"
	"big_studio/internal/usecase"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register creates an account and returns a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] register start username=%s", payload.Username)

	user, token, err := h.usecase.Register(c.Request.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] register failed username=%s err=%v", payload.Username, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] register success username=%s user_id=%s", user.Username, user.ID)

	c.JSON(http.StatusCreated, response.FromAuth(user, token))
}

// Login exchanges credentials for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] login start username=%s", payload.Username)

	user, token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] login failed username=%s err=%v", payload.Username, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] login success username=%s user_id=%s", user.Username, user.ID)

	c.JSON(http.StatusOK, response.FromAuth(user, token))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid registration data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
