package middleware

import (
	"net/http"
	"strings"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
	"big_studio/pkg"

	"github.com/gin-gonic/gin"
)

const userContextKey = "auth.user"

// RequireAuth verifies the Authorization bearer token and stores the
// authenticated user on the request context. The user id is the blob store
// owner id for every downstream operation.
func RequireAuth(tokens interfaces.ITokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed Authorization header", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		user, err := tokens.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}
