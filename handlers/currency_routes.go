// handlers/currency_routes.go
package handlers

import (
	"link-organizer-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCurrencyRoutes(app *fiber.App, currency *services.CurrencyService) {
	app.Get("/currency", func(c *fiber.Ctx) error {
		return c.JSON(currency.LoadCurrency())
	})

	app.Get("/currency/transactions", func(c *fiber.Ctx) error {
		return c.JSON(currency.LoadTransactions())
	})

	app.Post("/currency/coins", func(c *fiber.Ctx) error {
		var req struct {
			Amount int    `json:"amount"`
			Reason string `json:"reason"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Amount == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be non-zero"})
		}
		if req.Reason == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "reason is required"})
		}

		balance := currency.AddCoins(req.Amount, req.Reason)
		return c.JSON(balance)
	})
}
