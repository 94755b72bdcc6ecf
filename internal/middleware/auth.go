// Package middleware provides authentication, logging and tracing middleware for the application.
package middleware

import (
	"context"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader carries the signed identity token.
const TokenHeader = "x-auth-token"

// TokenVerifier resolves a token to the user it was issued for.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// extractToken reads the token header, falling back to "Authorization: Bearer <token>".
func extractToken(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Get(TokenHeader)); token != "" {
		return token
	}
	parts := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// AuthRequired is a middleware that enforces authentication for protected routes.
// On success the user ID is stored in c.Locals("userID") and in the user context.
func AuthRequired(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			observability.AuthFailures.WithLabelValues("no_token").Inc()
			return models.RespondWithError(c, models.ErrNoToken)
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			observability.AuthFailures.WithLabelValues("invalid_token").Inc()
			Logger.DebugContext(c.UserContext(), "token rejected", "reason", err.Error())
			return models.RespondWithError(c, models.ErrTokenInvalid)
		}

		c.Locals("userID", userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))

		return c.Next()
	}
}

// CurrentUserID returns the authenticated user ID set by AuthRequired.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok && userID != 0
}
