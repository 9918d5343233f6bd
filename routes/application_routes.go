package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func ApplicationRoutes(app *fiber.App, h *handlers.ApplicationHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	teacher := api.Group("/applications",
		middleware.Protected(ids),
		middleware.TeacherRequired(ids),
	)
	teacher.Post("/jobs/:jobId", middleware.OnboardingRequired(ids), h.Apply)
	teacher.Get("/me", h.GetMyApplications)
	teacher.Put("/:id/withdraw", h.Withdraw)

	school := api.Group("/school/applications",
		middleware.Protected(ids),
		middleware.SchoolRequired(ids),
	)
	school.Get("/jobs/:jobId", h.GetJobApplications)
	school.Put("/:id/status", h.UpdateStatus)
}
