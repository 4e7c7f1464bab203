package handlers

import (
	"fmt"

	"rentledger/internal/app"
	reportController "rentledger/internal/controllers/reports"
	utilityController "rentledger/internal/controllers/utilities"
	"rentledger/internal/types"

	"github.com/gofiber/fiber/v2"
)

type UtilityHandler struct {
	Handler
	utilityController utilityController.UtilityControllerInterface
	reportController  reportController.ReportControllerInterface
}

func NewUtilityHandler(app app.App, router fiber.Router) *UtilityHandler {
	return &UtilityHandler{
		utilityController: app.Controllers.Utility,
		reportController:  app.Controllers.Report,
		Handler:           newHandler(app, router, "utility_handler"),
	}
}

func (h *UtilityHandler) Register() {
	read := h.middleware.RequirePermission(types.ResourceUtility, types.ActionRead)
	write := h.middleware.RequirePermission(types.ResourceUtility, types.ActionWrite)
	report := h.middleware.RequirePermission(types.ResourceReport, types.ActionRead)

	utilities := h.router.Group("/utilities")
	utilities.Post("", write, h.createUtility)
	utilities.Get("/mine", read, h.listMine)
	utilities.Get("/month/:month", read, h.listByMonth)
	utilities.Get("/room/:roomId", read, h.listByRoom)
	utilities.Get("/room/:roomId/latest", read, h.latestForRoom)
	utilities.Get("/room/:roomId/unpaid", read, h.listUnpaid)
	utilities.Get("/house/:houseId", read, h.listByHouse)
	utilities.Get("/house/:houseId/pdf", report, h.houseReport)
	utilities.Get("/:id", read, h.getUtility)
	utilities.Patch("/:id/pay", write, h.markPaid)
	utilities.Delete("/:id", write, h.deleteUtility)
}

func (h *UtilityHandler) createUtility(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req types.CreateUtilityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	utility, err := h.utilityController.CreateUtility(c.UserContext(), user, req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utility)
}

func (h *UtilityHandler) getUtility(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid utility ID")
	}

	utility, err := h.utilityController.GetUtility(c.UserContext(), user, id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(utility)
}

func (h *UtilityHandler) markPaid(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid utility ID")
	}

	var req types.MarkPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := types.Validate(req); err != nil {
		return respondError(c, h.log, err)
	}

	utility, err := h.utilityController.MarkPaid(c.UserContext(), user, id, *req.IsPaid)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(utility)
}

func (h *UtilityHandler) deleteUtility(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid utility ID")
	}

	if err := h.utilityController.DeleteUtility(c.UserContext(), user, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UtilityHandler) listByRoom(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	roomID, err := paramID(c, "roomId")
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	utilities, err := h.utilityController.ListByRoom(c.UserContext(), user, roomID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"utilities": utilities})
}

func (h *UtilityHandler) listUnpaid(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	roomID, err := paramID(c, "roomId")
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	utilities, err := h.utilityController.ListUnpaid(c.UserContext(), user, roomID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"utilities": utilities})
}

// latestForRoom answers {"utility": null} for a room with no records.
func (h *UtilityHandler) latestForRoom(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	roomID, err := paramID(c, "roomId")
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	utility, err := h.utilityController.LatestForRoom(c.UserContext(), user, roomID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"utility": utility})
}

func (h *UtilityHandler) listByHouse(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	houseID, err := paramID(c, "houseId")
	if err != nil {
		return badRequest(c, "Invalid house ID")
	}

	utilities, err := h.utilityController.ListByHouse(c.UserContext(), user, houseID, c.Query("month"))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"utilities": utilities})
}

func (h *UtilityHandler) listByMonth(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	utilities, err := h.utilityController.ListByMonth(c.UserContext(), user, c.Params("month"))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"utilities": utilities})
}

func (h *UtilityHandler) listMine(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	utilities, err := h.utilityController.ListMine(c.UserContext(), user, c.Query("month"))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"utilities": utilities})
}

func (h *UtilityHandler) houseReport(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	houseID, err := paramID(c, "houseId")
	if err != nil {
		return badRequest(c, "Invalid house ID")
	}

	report, err := h.reportController.HouseUtilityReport(c.UserContext(), user, houseID, c.Query("month"))
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	return c.Send(report.Content)
}
