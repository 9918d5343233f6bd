package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(ids), middleware.AdminRequired(ids))

	admin.Get("/schools/pending", h.ListPendingSchools)
	admin.Put("/schools/:schoolId", h.ManageSchool)

	users := admin.Group("/users")
	users.Get("", h.ListUsers)
	users.Put("/:userId/status", h.SetUserActive)
	users.Put("/:userId/promote", h.PromoteToAdmin)

	admin.Get("/stats", h.GetPlatformStats)

	// Transactional relay used by internal tooling. Kept outside the
	// versioned prefix for compatibility with existing callers.
	app.Post("/api/send-email", middleware.Protected(ids), middleware.AdminRequired(ids), handlers.SendEmail)
}
