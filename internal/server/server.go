package server

import (
	"github.com/mockdesk/mockdesk/internal/controllers"
	"github.com/mockdesk/mockdesk/internal/middlewares"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type HTTPServerDependencies struct {
	SlackController    *controllers.SlackController
	AdminController    *controllers.AdminController
	ScheduleController *controllers.ScheduleController
	AdminKey           string
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "mockdesk",
	})

	router.Use(cors.New())
	router.Use(logger.New())

	router.Get("/health-check", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	router.Get("/callback", deps.SlackController.OAuthCallback)
	router.Post("/slack/interactive-endpoint", deps.SlackController.Interactive)
	router.Get("/interviews-schedule/:date", deps.ScheduleController.ListByDate)

	// Handlers run in registration order, so the key check must precede the
	// mutating handler on every administrative route.
	adminKey := middlewares.AdminKey(deps.AdminKey)

	router.Post("/companies", adminKey, deps.AdminController.AppendCompanies)
	router.Patch("/teams/:teamId/calendar", adminKey, deps.AdminController.SetCalendar)
	router.Post("/global-data/:name", adminKey, deps.AdminController.UpsertGlobalData)

	return router
}
