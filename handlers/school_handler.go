package handlers

import (
	"errors"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SchoolHandler struct {
	IDs *identity.Service
}

func NewSchoolHandler(ids *identity.Service) *SchoolHandler {
	return &SchoolHandler{IDs: ids}
}

type SchoolProfileRequest struct {
	SchoolName string  `json:"school_name" validate:"required"`
	District   *string `json:"district"`
	Location   *string `json:"location"`
	About      *string `json:"about"`
	Website    *string `json:"website"`
}

// CreateSchoolProfile registers the school for admin review; it stays
// pending until approved.
func (h *SchoolHandler) CreateSchoolProfile(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var req SchoolProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.SchoolProfile
	err = database.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "School profile already exists."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	profile := models.SchoolProfile{
		UserID:     userID,
		SchoolName: req.SchoolName,
		District:   req.District,
		Location:   req.Location,
		About:      req.About,
		Website:    req.Website,
	}

	if err := database.DB.Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create school profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *SchoolHandler) GetMySchoolProfile(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var profile models.SchoolProfile
	if err := database.DB.Preload("User").First(&profile, "user_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "School profile not found"})
	}

	return c.JSON(profile)
}

func (h *SchoolHandler) UpdateMySchoolProfile(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var profile models.SchoolProfile
	if err := database.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "School profile not found"})
	}

	var req SchoolProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.SchoolName != "" {
		profile.SchoolName = req.SchoolName
	}
	if req.District != nil {
		profile.District = req.District
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.About != nil {
		profile.About = req.About
	}
	if req.Website != nil {
		profile.Website = req.Website
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update school profile"})
	}

	return c.JSON(profile)
}

// GetSchoolProfile is the public view; only active schools are visible.
func (h *SchoolHandler) GetSchoolProfile(c *fiber.Ctx) error {
	schoolID := c.Params("schoolId")

	var profile models.SchoolProfile
	if err := database.DB.Preload("User").First(&profile, "user_id = ? AND status = ?", schoolID, models.SchoolStatusActive).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Active school not found"})
	}

	return c.JSON(profile)
}
