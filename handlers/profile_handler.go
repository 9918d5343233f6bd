package handlers

import (
	"log"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/onboarding"
	"github.com/chalkroute/teacher_match/services"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

type ProfileHandler struct {
	IDs *identity.Service
}

func NewProfileHandler(ids *identity.Service) *ProfileHandler {
	return &ProfileHandler{IDs: ids}
}

type UpdateProfileRequest struct {
	FullName          *string `json:"full_name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	TimeZone          *string `json:"time_zone"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.TimeZone != nil {
		user.TimeZone = req.TimeZone
	}

	database.DB.Save(&user)

	return c.JSON(user)
}

type UpdateTeacherProfileRequest struct {
	Headline        *string  `json:"headline"`
	Bio             *string  `json:"bio"`
	Subjects        []string `json:"subjects"`
	GradeLevels     []string `json:"grade_levels"`
	Certifications  []string `json:"certifications"`
	Location        *string  `json:"location"`
	YearsExperience *string  `json:"years_experience"`
	ResumeURL       *string  `json:"resume_url"`
	IntroVideoURL   *string  `json:"intro_video_url"`
}

func (h *ProfileHandler) GetMyTeacherProfile(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var profile models.TeacherProfile
	if err := database.DB.Preload("User").First(&profile, "user_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher profile not found"})
	}

	return c.JSON(profile)
}

// UpdateMyTeacherProfile saves scoring-relevant attributes and recomputes
// this teacher's matches in the background, since any of them can shift
// scores.
func (h *ProfileHandler) UpdateMyTeacherProfile(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var profile models.TeacherProfile
	if err := database.DB.Preload("User").First(&profile, "user_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher profile not found"})
	}

	var req UpdateTeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Headline != nil {
		profile.Headline = req.Headline
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Subjects != nil {
		profile.Subjects = pq.StringArray(req.Subjects)
	}
	if req.GradeLevels != nil {
		profile.GradeLevels = pq.StringArray(req.GradeLevels)
	}
	if req.Certifications != nil {
		profile.Certifications = pq.StringArray(req.Certifications)
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.YearsExperience != nil {
		profile.YearsExperience = req.YearsExperience
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = req.ResumeURL
	}
	if req.IntroVideoURL != nil {
		profile.IntroVideoURL = req.IntroVideoURL
	}

	wasComplete := profile.OnboardingComplete
	pct := onboarding.TeacherCompletion(profile.User, profile)
	profile.OnboardingComplete = onboarding.IsComplete(pct)

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update teacher profile"})
	}

	go func() {
		if err := services.RefreshMatchesForTeacher(userID); err != nil {
			log.Printf("🔥 Match refresh after profile update failed for %s: %v", userID, err)
		}
	}()
	if !wasComplete && profile.OnboardingComplete {
		go services.CompleteReferralIfApplicable(userID)
	}

	return c.JSON(fiber.Map{
		"profile":    profile,
		"completion": pct,
	})
}

// GetCompletion exposes the profile-completion gate: percentage, the fixed
// field list with presence flags, and whether matching is unlocked.
func (h *ProfileHandler) GetCompletion(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	role, err := h.IDs.CurrentRole(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	switch role {
	case identity.RoleTeacher:
		var profile models.TeacherProfile
		if err := database.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher profile not found"})
		}
		fields := onboarding.TeacherRequiredFields(user, profile)
		pct := onboarding.Completion(fields)
		return c.JSON(fiber.Map{
			"completion": pct,
			"complete":   onboarding.IsComplete(pct),
			"fields":     fields,
		})
	case identity.RoleSchool:
		var profile models.SchoolProfile
		if err := database.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "School profile not found"})
		}
		fields := onboarding.SchoolRequiredFields(user, profile)
		pct := onboarding.Completion(fields)
		return c.JSON(fiber.Map{
			"completion": pct,
			"complete":   onboarding.IsComplete(pct),
			"fields":     fields,
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Completion is not tracked for this role"})
	}
}
