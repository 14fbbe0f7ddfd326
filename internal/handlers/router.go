package handlers

import (
	"melodex/internal/app"

	"github.com/gofiber/fiber/v2"
)

func Router(router fiber.Router, app *app.App) (err error) {
	router.Use(app.Middleware.TraceID())

	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewIngestHandler(*app, api).Register()

	return nil
}
