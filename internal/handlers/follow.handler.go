package handlers

import (
	"rentledger/internal/app"
	followController "rentledger/internal/controllers/follows"
	"rentledger/internal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FollowHandler struct {
	Handler
	followController followController.FollowControllerInterface
}

func NewFollowHandler(app app.App, router fiber.Router) *FollowHandler {
	return &FollowHandler{
		followController: app.Controllers.Follow,
		Handler:          newHandler(app, router, "follow_handler"),
	}
}

func (h *FollowHandler) Register() {
	read := h.middleware.RequirePermission(types.ResourceFollow, types.ActionRead)
	write := h.middleware.RequirePermission(types.ResourceFollow, types.ActionWrite)

	follows := h.router.Group("/follows")
	follows.Get("/followers", read, h.listFollowers)
	follows.Get("/following", read, h.listFollowing)
	follows.Get("/:userId/followers", read, h.listFollowers)
	follows.Get("/:userId/following", read, h.listFollowing)
	follows.Post("/:userId", write, h.follow)
	follows.Delete("/:userId", write, h.unfollow)
}

func (h *FollowHandler) follow(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	targetID, err := paramID(c, "userId")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.followController.Follow(c.UserContext(), user, targetID); err != nil {
		return respondError(c, h.log, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

func (h *FollowHandler) unfollow(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	targetID, err := paramID(c, "userId")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.followController.Unfollow(c.UserContext(), user, targetID); err != nil {
		return respondError(c, h.log, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FollowHandler) listFollowers(c *fiber.Ctx) error {
	userID, err := h.subject(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	followers, err := h.followController.Followers(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(followers)
}

func (h *FollowHandler) listFollowing(c *fiber.Ctx) error {
	userID, err := h.subject(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	following, err := h.followController.Following(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(following)
}

// subject is the :userId path user, or the acting user when absent.
func (h *FollowHandler) subject(c *fiber.Ctx) (uuid.UUID, error) {
	if c.Params("userId") != "" {
		return paramID(c, "userId")
	}

	user, err := currentUser(c)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}
