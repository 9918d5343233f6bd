package handlers

import (
	"strconv"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MatchHandler struct {
	IDs *identity.Service
}

func NewMatchHandler(ids *identity.Service) *MatchHandler {
	return &MatchHandler{IDs: ids}
}

// GetMyMatches returns the teacher's ranked job list. Matches are computed
// lazily on first access and cached until the next recomputation.
func (h *MatchHandler) GetMyMatches(c *fiber.Ctx) error {
	teacherID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	ranked, err := services.RankedMatchesForTeacher(teacherID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute matches"})
	}

	return c.JSON(ranked)
}

func (h *MatchHandler) GetMyFavorites(c *fiber.Ctx) error {
	teacherID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var favorites []models.Match
	database.DB.Preload("Job").Preload("Job.School").
		Where("teacher_id = ? AND is_favorited = ?", teacherID, true).
		Order("updated_at desc").
		Find(&favorites)

	return c.JSON(favorites)
}

type matchFlagRequest struct {
	Value bool `json:"value"`
}

// SetFavorite toggles is_favorited, lazily creating the Match row when the
// teacher favorites a job that was never scored for them.
func (h *MatchHandler) SetFavorite(c *fiber.Ctx) error {
	return h.setFlag(c, func(m *models.Match, value bool) { m.IsFavorited = value })
}

// SetHidden toggles is_hidden, removing the job from the teacher's ranked
// list without deleting the score.
func (h *MatchHandler) SetHidden(c *fiber.Ctx) error {
	return h.setFlag(c, func(m *models.Match, value bool) { m.IsHidden = value })
}

func (h *MatchHandler) setFlag(c *fiber.Ctx, apply func(*models.Match, bool)) error {
	teacherID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job id"})
	}

	req := matchFlagRequest{Value: true}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	match, err := services.EnsureMatch(teacherID, jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	apply(&match, req.Value)
	if err := database.DB.Save(&match).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update match"})
	}
	services.InvalidateMatchCache(teacherID)

	return c.JSON(match)
}

// GetJobCandidates is the school-side ranked candidate list for one of its
// own jobs.
func (h *MatchHandler) GetJobCandidates(c *fiber.Ctx) error {
	schoolID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job id"})
	}

	var job models.Job
	if err := database.DB.First(&job, "id = ? AND school_id = ?", jobID, schoolID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found or you do not have permission to view it."})
	}

	candidates, err := services.RankedCandidatesForJob(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute candidates"})
	}

	return c.JSON(candidates)
}
