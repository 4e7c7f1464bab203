package handlers

import (
	"rentledger/internal/app"
	authController "rentledger/internal/controllers/auth"
	"rentledger/internal/types"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	authController authController.AuthControllerInterface
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	return &AuthHandler{
		authController: app.Controllers.Auth,
		Handler:        newHandler(app, router, "auth_handler"),
	}
}

func (h *AuthHandler) Register() {
	auth := h.router.Group("/auth")
	auth.Post("/register", h.register)
	auth.Post("/login", h.login)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	response, err := h.authController.Register(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	response, err := h.authController.Login(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(response)
}
