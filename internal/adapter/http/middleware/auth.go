package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LuisM11/TaskMaster/internal/auth"
	"github.com/LuisM11/TaskMaster/pkg/apierrors"
)

const identityKey = "identity"

// AuthMiddleware guards every owner-scoped route: it verifies the bearer
// token and stores the caller's identity on the request context. Requests
// with no usable token are rejected with 401 before reaching a handler.
func AuthMiddleware(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		identity, err := tokens.Verify(extractBearerToken(c.GetHeader("Authorization")))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the authenticated caller set by AuthMiddleware.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
