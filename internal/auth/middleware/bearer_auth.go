package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resume-site/resume-backend/internal/auth/domain"
	"github.com/resume-site/resume-backend/internal/auth/token"
)

// ContextUsername is the gin context key holding the authenticated
// admin's username.
const ContextUsername = "username"

// UserGetter is the slice of the user repository the middleware needs.
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RequireAuth validates the bearer token and confirms its subject
// still exists in the users table before letting the request through.
func RequireAuth(tokens *token.Service, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		subject, err := tokens.Validate(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication credentials"})
			return
		}

		user, err := users.GetByUsername(c.Request.Context(), subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(ContextUsername, user.Username)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
