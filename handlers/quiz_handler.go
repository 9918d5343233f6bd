package handlers

import (
	"log"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/matching"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/onboarding"
	"github.com/chalkroute/teacher_match/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizHandler struct {
	IDs *identity.Service
}

func NewQuizHandler(ids *identity.Service) *QuizHandler {
	return &QuizHandler{IDs: ids}
}

// GetQuestions returns the archetype quiz in display order. Option archetypes
// are not serialized, so the client cannot game the outcome.
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	var questions []models.QuizQuestion
	if err := database.DB.Preload("Options").Order("position asc").Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch quiz"})
	}
	return c.JSON(questions)
}

type QuizSubmitRequest struct {
	Answers []QuizAnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

type QuizAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid"`
	OptionID   string `json:"option_id" validate:"required,uuid"`
}

// Submit scores the teacher's quiz answers, assigns the winning archetype to
// their profile and recomputes their matches. Ties resolve to the archetype
// listed first in canonical order, so resubmitting the same answers always
// yields the same result.
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	teacherID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	req := new(QuizSubmitRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tally := make(map[matching.Archetype]int)
	answers := make([]models.QuizAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		optionID := uuid.MustParse(a.OptionID)
		questionID := uuid.MustParse(a.QuestionID)

		var option models.QuizOption
		if err := database.DB.First(&option, "id = ? AND question_id = ?", optionID, questionID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Answer does not match any quiz option"})
		}
		archetype, err := matching.ParseArchetype(option.Archetype)
		if err != nil {
			log.Printf("⚠️ Quiz option %s has unknown archetype %q", option.ID, option.Archetype)
			continue
		}
		tally[archetype]++
		answers = append(answers, models.QuizAnswer{QuestionID: questionID, OptionID: optionID})
	}
	if len(tally) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No scorable answers submitted"})
	}

	winner := matching.Archetypes[0]
	best := -1
	for _, a := range matching.Archetypes {
		if tally[a] > best {
			winner = a
			best = tally[a]
		}
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		submission := models.QuizSubmission{
			TeacherID: teacherID,
			Archetype: string(winner),
			Answers:   answers,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}

		archetype := string(winner)
		return tx.Model(&models.TeacherProfile{}).
			Where("user_id = ?", teacherID).
			Update("archetype", &archetype).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save quiz result"})
	}

	go func() {
		if err := services.RefreshMatchesForTeacher(teacherID); err != nil {
			log.Printf("🔥 Failed to refresh matches after quiz for %s: %v", teacherID, err)
		}
	}()

	var user models.User
	var profile models.TeacherProfile
	database.DB.First(&user, "id = ?", teacherID)
	database.DB.First(&profile, "user_id = ?", teacherID)
	completion := onboarding.TeacherCompletion(user, profile)

	return c.JSON(fiber.Map{
		"archetype":  winner,
		"tally":      tally,
		"completion": completion,
	})
}
