package api

import (
	"github.com/gofiber/fiber/v2"
	v1 "github.com/nearbuy/marketplace/internal/api/v1"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)

	app.Get("/v1/products", handler.SearchProducts)
	app.Post("/v1/products", handler.PublishProduct)
	app.Get("/v1/products/:id", handler.GetProduct)

	app.Post("/v1/transactions/contact", handler.ContactSeller)
	app.Get("/v1/transactions/:id", handler.GetTransaction)
	app.Post("/v1/transactions/:id/messages", handler.SendMessage)
	app.Post("/v1/transactions/:id/offer", handler.MakeOffer)
	app.Post("/v1/transactions/:id/accept", handler.AcceptOffer)

	app.Get("/v1/users/:id/products", handler.UserProducts)
	app.Get("/v1/users/:id/transactions", handler.UserTransactions)

	app.Get("/v1/admin/summary", handler.AdminSummary)
	app.Get("/v1/share", handler.ShareLink)
}
