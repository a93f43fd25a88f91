package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"leadflow-crm/internal/api"
	"leadflow-crm/internal/auth"
	"leadflow-crm/internal/entities"
)

const identityKey = "identity"

// Authenticate verifies the bearer token and stores the identity claims in
// the request locals for downstream authorization.
func Authenticate(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, "Unauthorized")
		}

		identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RequireAdmin rejects authenticated identities without the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromCtx(c)
		if !ok || identity.Role != entities.RoleAdmin {
			return c.Status(http.StatusForbidden).JSON(api.ErrorResponse{
				Error: api.ErrorBody{Code: api.FORBIDDEN, Message: "Admin access required"},
			})
		}
		return c.Next()
	}
}

// IdentityFromCtx extracts the verified identity set by Authenticate.
func IdentityFromCtx(c *fiber.Ctx) (entities.Identity, bool) {
	identity, ok := c.Locals(identityKey).(entities.Identity)
	return identity, ok
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorBody{Code: api.UNAUTHORIZED, Message: msg},
	})
}
