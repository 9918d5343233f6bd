package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App, ids *identity.Service) {
	api := app.Group("/api/v1")

	api.Get("/uploads/signature", middleware.Protected(ids), handlers.GenerateUploadSignature)
}
