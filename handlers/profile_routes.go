// handlers/profile_routes.go
package handlers

import (
	"link-organizer-system/models"
	"link-organizer-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App, profiles *services.ProfileService, progression *services.ProgressionService) {
	// GET /profile is the "board opened" action: it rolls the daily login
	// streak and re-syncs login missions, so reward XP for a streak can land
	// on the first open of the day.
	app.Get("/profile", func(c *fiber.Ctx) error {
		update := progression.SyncLogin()
		return c.JSON(fiber.Map{
			"profile":            update.Profile,
			"completed_missions": update.CompletedMissions,
			"xp_gained":          update.XPGained,
			"leveled_up":         update.LeveledUp,
		})
	})

	app.Put("/profile", func(c *fiber.Ctx) error {
		var req struct {
			Username     *string `json:"username"`
			Avatar       *int    `json:"avatar"`
			CustomAvatar *string `json:"customAvatar"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Avatar != nil && (*req.Avatar < 1 || *req.Avatar > models.AvatarCount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar must be between 1 and 5"})
		}
		if req.Avatar != nil && req.CustomAvatar != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar and customAvatar are mutually exclusive"})
		}

		profile := profiles.UpdateIdentity(req.Username, req.Avatar, req.CustomAvatar)
		return c.JSON(profile)
	})

	app.Get("/profile/level", func(c *fiber.Ctx) error {
		profile := profiles.Load()
		next := services.NextLevelXP(profile.Level)
		remaining := next - profile.XP
		if profile.Level == models.LevelDiamante || remaining < 0 {
			remaining = 0
		}
		return c.JSON(fiber.Map{
			"level":         profile.Level,
			"level_name":    services.LevelDisplayName(profile.Level),
			"xp":            profile.XP,
			"next_level_xp": next,
			"xp_to_next":    remaining,
		})
	})
}
