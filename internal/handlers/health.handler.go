package handlers

import (
	"context"
	"errors"
	"time"

	"rentledger/config"
	"rentledger/internal/database"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports readiness. A cache outage does not fail the check since
// every cached lookup falls back to the database.
func HealthHandler(router fiber.Router, config config.Config, db database.DB) {
	router.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		status, code, databaseStatus := "ok", fiber.StatusOK, "ok"
		if err := db.PingSQL(ctx); err != nil {
			status, code, databaseStatus = "unavailable", fiber.StatusServiceUnavailable, "down"
		}

		cacheStatus := "ok"
		switch err := db.PingCache(ctx); {
		case errors.Is(err, database.ErrCacheDisabled):
			cacheStatus = "disabled"
		case err != nil:
			cacheStatus = "down"
		}

		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"version":  config.GeneralVersion,
			"service":  "rentledger_api",
			"database": databaseStatus,
			"cache":    cacheStatus,
		})
	})
}
