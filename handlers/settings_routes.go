// handlers/settings_routes.go
package handlers

import (
	"link-organizer-system/models"
	"link-organizer-system/services"
	"link-organizer-system/utils"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App, settings *services.SettingsService) {
	app.Get("/settings/title", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"title": settings.PageTitle()})
	})

	app.Put("/settings/title", func(c *fiber.Ctx) error {
		var req struct {
			Title string `json:"title"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
		}
		settings.SetPageTitle(req.Title)
		return c.JSON(fiber.Map{"title": req.Title})
	})

	app.Get("/settings/background", func(c *fiber.Ctx) error {
		sel, custom := settings.Background()
		resp := fiber.Map{"id": sel.ID}
		if custom != "" {
			resp["customImage"] = custom
		}
		return c.JSON(resp)
	})

	app.Put("/settings/background", func(c *fiber.Ctx) error {
		var req struct {
			ID          *int   `json:"id"`
			CustomImage string `json:"customImage"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.CustomImage != "" {
			// uploaded image data is an opaque data-URL string
			settings.SetCustomBackground(req.CustomImage)
			return c.JSON(fiber.Map{"id": models.CustomBackgroundID})
		}
		if req.ID == nil || *req.ID < 1 || *req.ID > models.BackgroundCount {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id must name a built-in background"})
		}
		settings.SetBackground(*req.ID)
		return c.JSON(fiber.Map{"id": *req.ID})
	})

	app.Get("/settings/font", func(c *fiber.Ctx) error {
		return c.JSON(settings.Font())
	})

	app.Put("/settings/font", func(c *fiber.Ctx) error {
		var req models.FontSelection
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Family == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "family is required"})
		}
		settings.SetFont(req.Family)
		return c.JSON(req)
	})

	app.Get("/favicon", func(c *fiber.Ctx) error {
		siteURL := c.Query("url")
		if siteURL == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url query parameter is required"})
		}
		icon := utils.FaviconURL(siteURL)
		if c.QueryBool("hq") {
			icon = utils.HighQualityFaviconURL(siteURL)
		}
		return c.JSON(fiber.Map{"icon": icon})
	})
}
