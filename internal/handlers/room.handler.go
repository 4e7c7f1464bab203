package handlers

import (
	"context"

	"rentledger/internal/app"
	roomController "rentledger/internal/controllers/rooms"
	"rentledger/internal/models"
	"rentledger/internal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RoomHandler struct {
	Handler
	roomController roomController.RoomControllerInterface
}

func NewRoomHandler(app app.App, router fiber.Router) *RoomHandler {
	return &RoomHandler{
		roomController: app.Controllers.Room,
		Handler:        newHandler(app, router, "room_handler"),
	}
}

func (h *RoomHandler) Register() {
	read := h.middleware.RequirePermission(types.ResourceRoom, types.ActionRead)
	write := h.middleware.RequirePermission(types.ResourceRoom, types.ActionWrite)

	rooms := h.router.Group("/rooms")
	rooms.Post("", write, h.createRoom)
	rooms.Get("/mine", read, h.listMine)
	rooms.Get("/rented", read, h.listRented)
	rooms.Get("/house/:houseId", read, h.listBy("houseId", "Invalid house ID", h.roomController.ListByHouse))
	rooms.Get(
		"/house/:houseId/available",
		read,
		h.listBy("houseId", "Invalid house ID", h.roomController.ListAvailable),
	)
	rooms.Get("/floor/:floorId", read, h.listBy("floorId", "Invalid floor ID", h.roomController.ListByFloor))
	rooms.Get("/:id", read, h.getRoom)
	rooms.Put("/:id", write, h.updateRoom)
	rooms.Delete("/:id", write, h.deleteRoom)
	rooms.Put("/:id/renter", write, h.assignRenter)
	rooms.Delete("/:id/renter", write, h.removeRenter)
}

func (h *RoomHandler) createRoom(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req types.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	room, err := h.roomController.CreateRoom(c.UserContext(), user, req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(room)
}

func (h *RoomHandler) getRoom(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	room, err := h.roomController.GetRoom(c.UserContext(), user, id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(room)
}

func (h *RoomHandler) updateRoom(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	var req types.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	room, err := h.roomController.UpdateRoom(c.UserContext(), user, id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(room)
}

func (h *RoomHandler) deleteRoom(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	if err := h.roomController.DeleteRoom(c.UserContext(), user, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RoomHandler) listMine(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	rooms, err := h.roomController.ListMine(c.UserContext(), user)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"rooms": rooms})
}

func (h *RoomHandler) listRented(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	rooms, err := h.roomController.ListRented(c.UserContext(), user)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"rooms": rooms})
}

func (h *RoomHandler) listBy(
	param, invalidMsg string,
	list func(ctx context.Context, user *models.User, id uuid.UUID) ([]types.RoomResponse, error),
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c)
		if err != nil {
			return respondError(c, h.log, err)
		}

		id, err := paramID(c, param)
		if err != nil {
			return badRequest(c, invalidMsg)
		}

		rooms, err := list(c.UserContext(), user, id)
		if err != nil {
			return respondError(c, h.log, err)
		}

		return c.JSON(fiber.Map{"rooms": rooms})
	}
}

func (h *RoomHandler) assignRenter(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	var req types.AssignRenterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	room, err := h.roomController.AssignRenter(c.UserContext(), user, id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(room)
}

func (h *RoomHandler) removeRenter(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	room, err := h.roomController.RemoveRenter(c.UserContext(), user, id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(room)
}
