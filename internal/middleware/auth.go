package middleware

import (
	"context"
	"strings"

	"viewtube/internal/auth"
	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired returns middleware that enforces authentication for protected
// routes. The resolved user ID is stored in locals and the request context;
// handlers pass it explicitly into the core, never as ambient state.
func AuthRequired(verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Authorization required"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Invalid authorization header format"))
		}

		userID, err := verifier.Verify(parts[1])
		if err != nil {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		c.Locals("userID", userID)
		ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
