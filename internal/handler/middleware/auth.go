package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/ha0himanshuarora/QuickDesk/internal/auth"
	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

const (
	ctxUserID = "userID"
	ctxEmail  = "userEmail"
	ctxRole   = "userRole"
)

// AuthMiddleware validates the Bearer token and stores the actor's
// identity in the request context.
func AuthMiddleware(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, ginext.H{"error": "authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.JSON(http.StatusUnauthorized, ginext.H{"error": "invalid token format"})
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, string(claims.Role))
		c.Next()
	}
}

// RequireRole gates a route group to a single role.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if ActorRole(c) != role {
			c.JSON(http.StatusForbidden, ginext.H{"error": "access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func ActorID(c *ginext.Context) string {
	return c.GetString(ctxUserID)
}

func ActorEmail(c *ginext.Context) string {
	return c.GetString(ctxEmail)
}

func ActorRole(c *ginext.Context) domain.Role {
	return domain.Role(c.GetString(ctxRole))
}
