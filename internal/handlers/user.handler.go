package handlers

import (
	"rentledger/internal/app"
	userController "rentledger/internal/controllers/users"
	"rentledger/internal/handlers/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
	userController userController.UserControllerInterface
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	return &UserHandler{
		userController: app.Controllers.User,
		Handler:        newHandler(app, router, "user_handler"),
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/users")
	users.Get("/me", h.getCurrentUser)
	users.Get("/:id", h.getUser)
}

func (h *UserHandler) getCurrentUser(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	return c.JSON(fiber.Map{
		"user": h.userController.GetMe(c.UserContext(), user),
	})
}

func (h *UserHandler) getUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.userController.GetUser(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"user": user.ToSummary()})
}
