// handlers/link_routes.go
package handlers

import (
	"link-organizer-system/models"
	"link-organizer-system/services"

	"github.com/gofiber/fiber/v2"
)

func normalizeStyle(style *models.LinkStyle) error {
	if style.BorderColor == "" {
		style.BorderColor = "#3b82f6"
	}
	if style.BorderWidth == 0 {
		style.BorderWidth = 2
	}
	if style.BorderWidth < 1 || style.BorderWidth > 8 {
		return fiber.NewError(fiber.StatusBadRequest, "borderWidth must be between 1 and 8")
	}
	if style.BorderStyle == "" {
		style.BorderStyle = models.BorderSolid
	}
	return nil
}

func SetupLinkRoutes(app *fiber.App, links *services.LinkService, profiles *services.ProfileService, progression *services.ProgressionService) {
	app.Get("/links", func(c *fiber.Ctx) error {
		return c.JSON(links.LoadAll())
	})

	app.Post("/links", func(c *fiber.Ctx) error {
		var req services.LinkInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Name == "" || req.URL == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and url are required"})
		}
		if err := normalizeStyle(&req.Style); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if !services.OutlineUnlocked(profiles.Load().Level, req.Style.Outline) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "outline not unlocked at current level"})
		}

		link := links.Create(req)
		update := progression.RecordLinkCreated(link)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"link":     link,
			"progress": update,
		})
	})

	app.Put("/links/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")

		before, ok := links.Get(id)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found"})
		}

		var req services.LinkPatch
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Name != nil && *req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name cannot be empty"})
		}
		if req.URL != nil && *req.URL == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url cannot be empty"})
		}
		if req.Style != nil {
			if err := normalizeStyle(req.Style); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
			if !services.OutlineUnlocked(profiles.Load().Level, req.Style.Outline) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "outline not unlocked at current level"})
			}
		}

		after, ok := links.Update(id, req)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found"})
		}

		update := progression.RecordLinkUpdated(before, after)

		return c.JSON(fiber.Map{
			"link":     after,
			"progress": update,
		})
	})

	app.Delete("/links/:id", func(c *fiber.Ctx) error {
		links.Delete(c.Params("id"))
		return c.JSON(fiber.Map{"message": "Link deleted successfully"})
	})

	app.Put("/links/:id/style", func(c *fiber.Ctx) error {
		id := c.Params("id")

		var style models.LinkStyle
		if err := c.BodyParser(&style); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := normalizeStyle(&style); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if !services.OutlineUnlocked(profiles.Load().Level, style.Outline) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "outline not unlocked at current level"})
		}

		link, ok := links.UpdateStyle(id, style)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found"})
		}

		update := progression.RecordStyleModified(style)

		return c.JSON(fiber.Map{
			"link":     link,
			"progress": update,
		})
	})
}
