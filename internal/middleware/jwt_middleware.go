package middleware

import (
	"strings"

	"medingen/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// LocalUserID is the Fiber locals key holding the authenticated public user id.
const LocalUserID = "user_id"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(token string) (*services.TokenClaims, error)
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization token is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			return unauthorized(c, "Invalid token")
		}

		claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				return unauthorized(c, "Token has expired")
			}
			return unauthorized(c, "Invalid token")
		}

		c.Locals(LocalUserID, claims.Subject)

		return c.Next()
	}
}

// ProtectPaths runs auth in front of every request whose path is one of
// prefixes or lies below one of them. Other requests pass through.
func ProtectPaths(prefixes []string, auth fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, prefix := range prefixes {
			trimmed := strings.TrimSuffix(prefix, "/")
			if path == trimmed || strings.HasPrefix(path, trimmed+"/") {
				return auth(c)
			}
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
}
