package middleware

import (
	"context"
	"strings"

	"rentledger/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

// AuthContextKey is used to store auth info in context
type AuthContextKey string

const (
	UserKey      AuthContextKey = "user"
	UserKeyFiber string         = "User"
)

// RequireAuth resolves the acting user from a bearer token issued by
// TokenService. The token's subject must still exist and hold the same role.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logger.New("middleware").TraceFromContext(c.UserContext()).Function("RequireAuth")

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Info("missing authorization header")
			return unauthorized(c, "Authorization header required")
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") {
			log.Info("invalid authorization header format")
			return unauthorized(c, "Invalid authorization header format")
		}

		token = strings.TrimSpace(token)
		if token == "" {
			log.Info("empty token")
			return unauthorized(c, "Token required")
		}

		userID, role, err := m.tokens.Verify(token)
		if err != nil {
			log.Info("token validation failed", "error", err.Error())
			return unauthorized(c, "Invalid token")
		}

		user, err := m.userRepo.GetByID(c.UserContext(), m.DB.SQL, userID)
		if err != nil {
			log.Info("user not found in database", "userID", userID, "error", err.Error())
			return unauthorized(c, "User not found")
		}

		if user.Role != role {
			log.Info("token role no longer matches user", "userID", userID, "tokenRole", role)
			return unauthorized(c, "Invalid token")
		}

		c.Locals(UserKeyFiber, user)
		c.SetUserContext(context.WithValue(c.UserContext(), UserKey, user))

		log.Debug("user authenticated", "userID", user.ID, "role", user.Role)
		return c.Next()
	}
}

// GetUser extracts user from Fiber context
func GetUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(UserKeyFiber).(*models.User)
	if !ok {
		return nil
	}
	return user
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
