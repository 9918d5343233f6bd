package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App, h *handlers.ProfileHandler, q *handlers.QuizHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected(ids))
	profile.Get("/me", h.GetProfile)
	profile.Put("/me", h.UpdateProfile)
	profile.Get("/me/completion", h.GetCompletion)

	teacher := api.Group("/teacher-profile", middleware.Protected(ids), middleware.TeacherRequired(ids))
	teacher.Get("/me", h.GetMyTeacherProfile)
	teacher.Put("/me", h.UpdateMyTeacherProfile)

	quiz := api.Group("/quiz", middleware.Protected(ids), middleware.TeacherRequired(ids))
	quiz.Get("/questions", q.GetQuestions)
	quiz.Post("/submit", q.Submit)
}
