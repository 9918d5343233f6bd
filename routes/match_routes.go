package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

// MatchRoutes registers the teacher-side match surface. Everything here sits
// behind the onboarding gate: an incomplete profile cannot browse matches.
func MatchRoutes(app *fiber.App, h *handlers.MatchHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	matches := api.Group("/matches",
		middleware.Protected(ids),
		middleware.TeacherRequired(ids),
		middleware.OnboardingRequired(ids),
	)
	matches.Get("", h.GetMyMatches)
	matches.Get("/favorites", h.GetMyFavorites)
	matches.Put("/:jobId/favorite", h.SetFavorite)
	matches.Put("/:jobId/hide", h.SetHidden)
}
