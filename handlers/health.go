package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/database"
	"github.com/indiansabroad/indians-abroad-api/utils/response"
)

// HandleCheckHealth reports API and database health
func HandleCheckHealth(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return response.ServiceUnavailable(c, "Database unreachable")
		}
		return response.Success(c, fiber.Map{"status": "ok"})
	}
}
