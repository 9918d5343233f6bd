package handlers

import (
	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

type NotificationHandler struct {
	IDs *identity.Service
}

func NewNotificationHandler(ids *identity.Service) *NotificationHandler {
	return &NotificationHandler{IDs: ids}
}

// GetPreferences returns the caller's email preferences. A user who never
// touched them gets the all-enabled defaults.
func (h *NotificationHandler) GetPreferences(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	pref := models.NotificationPreference{
		UserID:                  userID,
		EmailNewMatches:         true,
		EmailApplicationUpdates: true,
		EmailMessages:           true,
		EmailInterviewReminders: true,
	}
	database.DB.Where("user_id = ?", userID).First(&pref)

	return c.JSON(pref)
}

type UpdatePreferencesRequest struct {
	EmailNewMatches         *bool `json:"email_new_matches"`
	EmailApplicationUpdates *bool `json:"email_application_updates"`
	EmailMessages           *bool `json:"email_messages"`
	EmailInterviewReminders *bool `json:"email_interview_reminders"`
}

func (h *NotificationHandler) UpdatePreferences(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	req := new(UpdatePreferencesRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	pref := models.NotificationPreference{
		UserID:                  userID,
		EmailNewMatches:         true,
		EmailApplicationUpdates: true,
		EmailMessages:           true,
		EmailInterviewReminders: true,
	}
	database.DB.Where("user_id = ?", userID).First(&pref)

	if req.EmailNewMatches != nil {
		pref.EmailNewMatches = *req.EmailNewMatches
	}
	if req.EmailApplicationUpdates != nil {
		pref.EmailApplicationUpdates = *req.EmailApplicationUpdates
	}
	if req.EmailMessages != nil {
		pref.EmailMessages = *req.EmailMessages
	}
	if req.EmailInterviewReminders != nil {
		pref.EmailInterviewReminders = *req.EmailInterviewReminders
	}

	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&pref).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update preferences"})
	}

	return c.JSON(pref)
}
