package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Post("/api/auth/token", handler.IssueAuthToken)

	api := app.Group("/api", handler.AuthRequired)

	analytics := api.Group("/analytics")
	analytics.Get("", handler.GetAnalytics)
	analytics.Get("/changes", handler.GetAnalyticsChanges)

	days := api.Group("/days")
	days.Get("", handler.GetDays)
	days.Put("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	api.Get("/cycle-config", handler.GetCycleConfig)
	api.Put("/cycle-config", handler.UpdateCycleConfig)

	app.Use(handler.NotFound)
}
