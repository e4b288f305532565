package handlers

import (
	"net/http"

	"big_studio/internal/adapter/http/middleware"
	"big_studio/internal/domain/entities"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// principal returns the authenticated user or writes a 401 and reports false.
// Handlers are only mounted behind RequireAuth, so a miss means a wiring bug.
func principal(c *gin.Context) (entities.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authentication", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.User{}, false
	}
	return user, true
}
