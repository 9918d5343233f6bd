package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(app *fiber.App, h *handlers.NotificationHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	prefs := api.Group("/notification-preferences", middleware.Protected(ids))
	prefs.Get("", h.GetPreferences)
	prefs.Put("", h.UpdatePreferences)
}
