package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func SchoolRoutes(app *fiber.App, h *handlers.SchoolHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	school := api.Group("/school-profile", middleware.Protected(ids), middleware.SchoolRequired(ids))
	school.Post("", h.CreateSchoolProfile)
	school.Get("/me", h.GetMySchoolProfile)
	school.Put("/me", h.UpdateMySchoolProfile)

	api.Get("/schools/:schoolId", h.GetSchoolProfile)
}
