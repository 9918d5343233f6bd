package routes

import (
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/middleware"
	"github.com/gofiber/fiber/v2"
)

func JobRoutes(app *fiber.App, h *handlers.JobHandler, m *handlers.MatchHandler, ids *identity.Service) {
	api := app.Group("/api/v1")

	api.Get("/jobs", h.ListJobs)
	api.Get("/jobs/:jobId", h.GetJob)

	school := api.Group("/school/jobs", middleware.Protected(ids), middleware.SchoolRequired(ids))
	school.Post("", h.CreateJob)
	school.Get("", h.GetMyJobs)
	school.Put("/:jobId", h.UpdateJob)
	school.Put("/:jobId/status", h.SetJobStatus)
	school.Get("/:jobId/candidates", m.GetJobCandidates)
}
