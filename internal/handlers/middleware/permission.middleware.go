package middleware

import (
	"errors"

	"rentledger/internal/types"

	"github.com/gofiber/fiber/v2"
)

// RequirePermission checks the acting user's role against the role policy
// before any ownership check runs. It must be mounted after RequireAuth.
func (m *Middleware) RequirePermission(kind types.ResourceKind, action types.Action) fiber.Handler {
	log := m.log.Function("RequirePermission")

	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			log.Info("user not found in context")
			return unauthorized(c, "Authentication required")
		}

		if err := m.policy.Require(user.Role, kind, action); err != nil {
			if !errors.Is(err, types.ErrPermissionDenied) {
				log.Er("policy evaluation failed", err, "userID", user.ID)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal server error",
				})
			}

			m.metrics.AuthorizationDenied(kind.String())
			log.Info("role not permitted", "userID", user.ID, "role", user.Role, "kind", kind, "action", action)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Next()
	}
}
