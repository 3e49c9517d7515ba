package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"banana-bank-go/internal/database"
)

// New builds the payment backend's Fiber app: CORS for browser
// clients, a health route and the payments resource.
func New(store *database.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New())

	handler := &PaymentHandler{Store: store}

	app.Get("/", handler.Health)
	app.Post("/payments", handler.CreatePayment)
	app.Get("/payments/:id", handler.GetPayment)
	app.Post("/payments/:id/confirm", handler.ConfirmPayment)

	return app
}
