package handlers

import (
	"rentledger/internal/app"
	floorController "rentledger/internal/controllers/floors"
	"rentledger/internal/types"

	"github.com/gofiber/fiber/v2"
)

type FloorHandler struct {
	Handler
	floorController floorController.FloorControllerInterface
}

func NewFloorHandler(app app.App, router fiber.Router) *FloorHandler {
	return &FloorHandler{
		floorController: app.Controllers.Floor,
		Handler:         newHandler(app, router, "floor_handler"),
	}
}

func (h *FloorHandler) Register() {
	read := h.middleware.RequirePermission(types.ResourceFloor, types.ActionRead)
	write := h.middleware.RequirePermission(types.ResourceFloor, types.ActionWrite)

	floors := h.router.Group("/floors")
	floors.Post("", write, h.createFloor)
	floors.Get("/mine", read, h.listMine)
	floors.Get("/house/:houseId", read, h.listByHouse)
	floors.Get("/:id", read, h.getFloor)
	floors.Put("/:id", write, h.updateFloor)
	floors.Delete("/:id", write, h.deleteFloor)
}

func (h *FloorHandler) createFloor(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req types.CreateFloorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	floor, err := h.floorController.CreateFloor(c.UserContext(), user, req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(floor)
}

func (h *FloorHandler) getFloor(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid floor ID")
	}

	floor, err := h.floorController.GetFloor(c.UserContext(), user, id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(floor)
}

func (h *FloorHandler) updateFloor(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid floor ID")
	}

	var req types.UpdateFloorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	floor, err := h.floorController.UpdateFloor(c.UserContext(), user, id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(floor)
}

func (h *FloorHandler) deleteFloor(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid floor ID")
	}

	if err := h.floorController.DeleteFloor(c.UserContext(), user, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FloorHandler) listByHouse(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	houseID, err := paramID(c, "houseId")
	if err != nil {
		return badRequest(c, "Invalid house ID")
	}

	floors, err := h.floorController.ListByHouse(c.UserContext(), user, houseID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"floors": floors})
}

func (h *FloorHandler) listMine(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	floors, err := h.floorController.ListMine(c.UserContext(), user)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"floors": floors})
}
