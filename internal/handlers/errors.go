package handlers

import (
	"errors"

	"rentledger/internal/handlers/middleware"
	"rentledger/internal/models"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{types.ErrNotFound, fiber.StatusNotFound},
	{types.ErrPermissionDenied, fiber.StatusForbidden},
	{types.ErrDuplicateRecord, fiber.StatusConflict},
	{types.ErrConflict, fiber.StatusConflict},
	{types.ErrInvalidReading, fiber.StatusUnprocessableEntity},
	{types.ErrUnauthenticated, fiber.StatusUnauthorized},
	{types.ErrValidation, fiber.StatusBadRequest},
}

func statusFor(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.err) {
			return mapping.status
		}
	}
	return fiber.StatusInternalServerError
}

// respondError maps a controller error to its status code. Unclassified
// errors are logged and hidden behind a generic message.
func respondError(c *fiber.Ctx, log logger.Logger, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.TraceFromContext(c.UserContext()).Er("request failed", err, "path", c.Path())
		return c.Status(status).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// currentUser is only nil when a route was mounted outside RequireAuth.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	user := middleware.GetUser(c)
	if user == nil {
		return nil, types.ErrUnauthenticated
	}
	return user, nil
}
