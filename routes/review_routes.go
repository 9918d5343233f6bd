package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App, h *handlers.ReviewHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	reviews := api.Group("/reviews")
	reviews.Post("", middleware.Protected(ids), h.CreateReview)
	reviews.Get("/users/:userId", h.GetReviewsFor)
}
