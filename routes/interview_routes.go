package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func InterviewRoutes(app *fiber.App, h *handlers.InterviewHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	interviews := api.Group("/interviews", middleware.Protected(ids))
	interviews.Get("/me", h.GetMyInterviews)
	interviews.Put("/:id/cancel", h.Cancel)

	interviews.Post("", middleware.SchoolRequired(ids), h.Schedule)
	interviews.Put("/:id/complete", middleware.SchoolRequired(ids), h.Complete)
	interviews.Put("/:id/respond", middleware.TeacherRequired(ids), h.Respond)
}
