package handlers

import (
	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	IDs *identity.Service
}

func NewReviewHandler(ids *identity.Service) *ReviewHandler {
	return &ReviewHandler{IDs: ids}
}

type CreateReviewRequest struct {
	SubjectID string  `json:"subject_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// CreateReview records a review between a teacher and a school. Reviews are
// only allowed between parties connected by a hire, and each author can
// review a given subject once.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	authorID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	role, err := h.IDs.CurrentRole(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	req := new(CreateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	subjectID := uuid.MustParse(req.SubjectID)

	var reviewType models.ReviewType
	var hired int64
	switch role {
	case identity.RoleTeacher:
		reviewType = models.ReviewTeacherOfSchool
		database.DB.Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("applications.teacher_id = ? AND jobs.school_id = ? AND applications.status = ?",
				authorID, subjectID, models.ApplicationHired).
			Count(&hired)
	case identity.RoleSchool:
		reviewType = models.ReviewSchoolOfTeacher
		database.DB.Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.school_id = ? AND applications.teacher_id = ? AND applications.status = ?",
				authorID, subjectID, models.ApplicationHired).
			Count(&hired)
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only teachers and schools can leave reviews."})
	}

	if hired == 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Reviews are only allowed after a completed hire."})
	}

	var existing models.Review
	if err := database.DB.First(&existing, "author_id = ? AND subject_id = ?", authorID, subjectID).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already reviewed this party."})
	}

	review := models.Review{
		AuthorID:   authorID,
		SubjectID:  subjectID,
		ReviewType: reviewType,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetReviewsFor lists reviews written about a user, newest first, with the
// average rating.
func (h *ReviewHandler) GetReviewsFor(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var reviews []models.Review
	database.DB.Where("subject_id = ?", subjectID).Order("created_at desc").Find(&reviews)

	var average float64
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		average = float64(total) / float64(len(reviews))
	}

	return c.JSON(fiber.Map{
		"reviews":        reviews,
		"average_rating": average,
		"count":          len(reviews),
	})
}
