package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes-tracker/pkg/jwt"
)

const (
	// UserIDContextKey is the echo context key for the authenticated user ID
	UserIDContextKey = "user_id"
	// UserEmailContextKey is the echo context key for the authenticated user email
	UserEmailContextKey = "user_email"
)

// EchoAuth returns an echo middleware that validates the bearer token and
// stores the authenticated user ID on the request context.
func EchoAuth(jwtManager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "Missing authorization token",
				})
			}

			claims, err := jwtManager.ValidateAccessToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "Invalid or expired token",
				})
			}

			c.Set(UserIDContextKey, claims.UserID)
			c.Set(UserEmailContextKey, claims.Email)
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user ID stored by EchoAuth.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return id, ok
}

// extractToken reads the bearer token from the Authorization header, falling
// back to the access_token cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}

	return ""
}
