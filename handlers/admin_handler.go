package handlers

import (
	"fmt"
	"log"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/notifications"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	IDs *identity.Service
}

func NewAdminHandler(ids *identity.Service) *AdminHandler {
	return &AdminHandler{IDs: ids}
}

func (h *AdminHandler) ListPendingSchools(c *fiber.Ctx) error {
	var pending []models.SchoolProfile
	if err := database.DB.Preload("User").Where("status = ?", models.SchoolStatusPending).Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pending)
}

type ManageSchoolRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended rejected"`
}

// ManageSchool approves, suspends or rejects a school. The decision is
// emailed to the school's account holder.
func (h *AdminHandler) ManageSchool(c *fiber.Ctx) error {
	req := new(ManageSchoolRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	schoolID, err := uuid.Parse(c.Params("schoolId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid school id"})
	}

	var profile models.SchoolProfile
	if err := database.DB.Preload("User").First(&profile, "user_id = ?", schoolID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "School not found"})
	}

	profile.Status = req.Status
	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update school status"})
	}

	switch req.Status {
	case models.SchoolStatusActive:
		go notifications.SendEmail(
			profile.User.FullName,
			profile.User.Email,
			"Your School has been Approved!",
			fmt.Sprintf("<h1>Welcome aboard!</h1><p><strong>%s</strong> has been verified. You can now post openings and browse candidates.</p>", profile.SchoolName),
		)
	case models.SchoolStatusSuspended, models.SchoolStatusRejected:
		go notifications.SendEmail(
			profile.User.FullName,
			profile.User.Email,
			"Update on Your School Account",
			fmt.Sprintf("<h1>Account Update</h1><p>The status of <strong>%s</strong> has changed to %s. Contact support if you believe this is a mistake.</p>", profile.SchoolName, req.Status),
		)
	}

	return c.JSON(fiber.Map{"message": "School status updated successfully"})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *AdminHandler) SetUserActive(c *fiber.Ctx) error {
	req := new(SetUserActiveRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = *req.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

// PromoteToAdmin elevates a user. Role-change subscribers are notified so
// already-issued tokens are not trusted for the old role.
func (h *AdminHandler) PromoteToAdmin(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Role = string(identity.RoleAdmin)
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user role"})
	}

	h.IDs.NotifyRoleChange(user.ID, identity.RoleAdmin)
	log.Printf("✅ User %s promoted to admin", user.ID)

	return c.JSON(fiber.Map{"message": "User promoted to admin"})
}

// GetPlatformStats returns headline counts for the admin dashboard.
func (h *AdminHandler) GetPlatformStats(c *fiber.Ctx) error {
	var teachers, schools, openJobs, applications, hires int64

	database.DB.Model(&models.User{}).Where("role = ?", "teacher").Count(&teachers)
	database.DB.Model(&models.SchoolProfile{}).Where("status = ?", models.SchoolStatusActive).Count(&schools)
	database.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusOpen).Count(&openJobs)
	database.DB.Model(&models.Application{}).Count(&applications)
	database.DB.Model(&models.Application{}).Where("status = ?", models.ApplicationHired).Count(&hires)

	return c.JSON(fiber.Map{
		"teachers":     teachers,
		"schools":      schools,
		"open_jobs":    openJobs,
		"applications": applications,
		"hires":        hires,
	})
}
