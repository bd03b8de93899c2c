package handlers

import (
	"recipe-box/app"

	"github.com/gofiber/fiber/v2"
)

// CheckTables reports whether the recipe tables exist.
// Missing tables are a normal answer, not an error.
func CheckTables(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := a.Repo.CheckTables()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to check tables", err)
		}

		if len(status.MissingTables) > 0 {
			a.Logger.Warn("required tables missing", "tables", status.MissingTables)
		}

		return c.JSON(status)
	}
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
