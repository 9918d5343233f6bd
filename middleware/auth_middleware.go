package middleware

import (
	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/onboarding"
	"github.com/gofiber/fiber/v2"
)

// Protected rejects requests without a valid token.
func Protected(ids *identity.Service) fiber.Handler {
	return ids.Middleware()
}

func roleRequired(ids *identity.Service, want identity.Role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := ids.CurrentRole(c)
		if err != nil || role != want {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": message,
			})
		}
		return c.Next()
	}
}

func AdminRequired(ids *identity.Service) fiber.Handler {
	return roleRequired(ids, identity.RoleAdmin, "Forbidden: Admin access required")
}

func TeacherRequired(ids *identity.Service) fiber.Handler {
	return roleRequired(ids, identity.RoleTeacher, "Forbidden: Teacher access required")
}

func SchoolRequired(ids *identity.Service) fiber.Handler {
	return roleRequired(ids, identity.RoleSchool, "Forbidden: School access required")
}

// OnboardingRequired gates job-matching features behind a 100% complete
// teacher profile. This is the only routing guard that consults the
// completion gate; handlers must not re-derive the decision.
func OnboardingRequired(ids *identity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := ids.CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}

		var profile models.TeacherProfile
		if err := database.DB.Preload("User").First(&profile, "user_id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Complete your teacher profile to access job matching",
			})
		}

		pct := onboarding.TeacherCompletion(profile.User, profile)
		if !onboarding.IsComplete(pct) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":      "Complete your teacher profile to access job matching",
				"completion": pct,
			})
		}
		return c.Next()
	}
}
