package handlers

import (
	"rentledger/internal/app"
	"rentledger/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func newHandler(app app.App, router fiber.Router, file string) Handler {
	return Handler{
		middleware: app.Middleware,
		log:        logger.New("handlers").File(file),
		router:     router,
	}
}

func Router(router fiber.Router, app *app.App) (err error) {
	router.Use(app.Middleware.TraceID())

	api := router.Group("/api")
	HealthHandler(api, app.Config, app.Database)
	NewAuthHandler(*app, api).Register()

	protected := api.Group("", app.Middleware.RequireAuth())
	NewUserHandler(*app, protected).Register()
	NewHouseHandler(*app, protected).Register()
	NewFloorHandler(*app, protected).Register()
	NewRoomHandler(*app, protected).Register()
	NewUtilityHandler(*app, protected).Register()
	NewFollowHandler(*app, protected).Register()

	return nil
}
