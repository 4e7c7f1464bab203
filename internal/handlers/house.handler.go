package handlers

import (
	"rentledger/internal/app"
	houseController "rentledger/internal/controllers/houses"
	"rentledger/internal/types"

	"github.com/gofiber/fiber/v2"
)

type HouseHandler struct {
	Handler
	houseController houseController.HouseControllerInterface
}

func NewHouseHandler(app app.App, router fiber.Router) *HouseHandler {
	return &HouseHandler{
		houseController: app.Controllers.House,
		Handler:         newHandler(app, router, "house_handler"),
	}
}

func (h *HouseHandler) Register() {
	read := h.middleware.RequirePermission(types.ResourceHouse, types.ActionRead)
	write := h.middleware.RequirePermission(types.ResourceHouse, types.ActionWrite)

	houses := h.router.Group("/houses")
	houses.Post("", write, h.createHouse)
	houses.Get("", read, h.listMine)
	houses.Get("/:id", read, h.getHouse)
	houses.Put("/:id", write, h.updateHouse)
	houses.Delete("/:id", write, h.deleteHouse)
}

func (h *HouseHandler) createHouse(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req types.CreateHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	house, err := h.houseController.CreateHouse(c.UserContext(), user, req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(house)
}

func (h *HouseHandler) listMine(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	houses, err := h.houseController.ListMine(c.UserContext(), user)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"houses": houses})
}

func (h *HouseHandler) getHouse(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid house ID")
	}

	house, err := h.houseController.GetHouse(c.UserContext(), user, id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(house)
}

func (h *HouseHandler) updateHouse(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid house ID")
	}

	var req types.UpdateHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	house, err := h.houseController.UpdateHouse(c.UserContext(), user, id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(house)
}

func (h *HouseHandler) deleteHouse(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid house ID")
	}

	if err := h.houseController.DeleteHouse(c.UserContext(), user, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
