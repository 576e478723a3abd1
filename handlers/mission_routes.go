// handlers/mission_routes.go
package handlers

import (
	"link-organizer-system/models"
	"link-organizer-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMissionRoutes(app *fiber.App, missions *services.MissionService, progression *services.ProgressionService) {
	app.Get("/missions", func(c *fiber.Ctx) error {
		all := missions.Load()

		active := []models.Mission{}
		completed := []models.Mission{}
		for _, m := range all {
			if m.Completed {
				completed = append(completed, m)
			} else {
				active = append(active, m)
			}
		}

		return c.JSON(fiber.Map{
			"missions":  all,
			"active":    active,
			"completed": completed,
		})
	})

	app.Post("/missions/sync", func(c *fiber.Ctx) error {
		update, ok := progression.Resync()
		if !ok {
			return c.JSON(fiber.Map{"message": "No profile yet, nothing to sync"})
		}
		return c.JSON(fiber.Map{
			"missions":           update.Missions,
			"xp_gained":          update.XPGained,
			"completed_missions": update.CompletedMissions,
		})
	})
}
