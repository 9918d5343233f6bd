package handlers

import (
	"fmt"
	"time"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/services"
	"github.com/chalkroute/teacher_match/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	IDs *identity.Service
}

func NewInterviewHandler(ids *identity.Service) *InterviewHandler {
	return &InterviewHandler{IDs: ids}
}

type ScheduleInterviewRequest struct {
	ApplicationID  string  `json:"application_id" validate:"required,uuid"`
	ScheduledAt    string  `json:"scheduled_at" validate:"required"`
	LocationOrLink string  `json:"location_or_link" validate:"required,min=3,max=255"`
	Notes          *string `json:"notes"`
}

// Schedule proposes an interview slot to the applicant. The application must
// be at the interview stage already, or be movable into it.
func (h *InterviewHandler) Schedule(c *fiber.Ctx) error {
	schoolID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	req := new(ScheduleInterviewRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "scheduled_at must be an RFC 3339 timestamp"})
	}
	if scheduledAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "scheduled_at must be in the future"})
	}

	applicationID := uuid.MustParse(req.ApplicationID)
	var application models.Application
	if err := database.DB.Preload("Job").First(&application, "id = ?", applicationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if application.Job.SchoolID != schoolID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have permission to schedule for this application."})
	}

	if application.Status != models.ApplicationInterview {
		if !application.Status.CanTransition(models.ApplicationInterview) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot schedule an interview for an application that is '%s'", application.Status),
			})
		}
		application.Status = models.ApplicationInterview
		if err := database.DB.Save(&application).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application"})
		}
	}

	interview := models.Interview{
		ApplicationID:    applicationID,
		ScheduledAt:      scheduledAt,
		LocationOrLink:   req.LocationOrLink,
		Status:           models.InterviewProposed,
		Notes:            req.Notes,
		ConfirmationCode: utils.GenerateConfirmationCode(),
	}
	if err := database.DB.Create(&interview).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to schedule interview"})
	}

	go func() {
		subject := fmt.Sprintf("Interview proposed for %s", application.Job.Title)
		body := fmt.Sprintf(
			"<p>You have been invited to interview for <strong>%s</strong> on %s.</p><p>Location / link: %s</p><p>Log in to confirm or decline.</p>",
			application.Job.Title, scheduledAt.Format("Monday, Jan 2 2006 at 3:04 PM"), req.LocationOrLink,
		)
		services.EmailIfEnabled(application.TeacherID, services.PrefInterviewReminders, subject, body)
	}()

	return c.Status(fiber.StatusCreated).JSON(interview)
}

type InterviewResponseRequest struct {
	Response string `json:"response" validate:"required,oneof=confirm decline"`
}

// Respond records the teacher's answer to a proposed interview.
func (h *InterviewHandler) Respond(c *fiber.Ctx) error {
	teacherID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid interview id"})
	}

	req := new(InterviewResponseRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var interview models.Interview
	if err := database.DB.Preload("Application").Preload("Application.Job").
		First(&interview, "id = ?", interviewID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Interview not found"})
	}
	if interview.Application.TeacherID != teacherID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have permission to respond to this interview."})
	}

	next := models.InterviewConfirmed
	if req.Response == "decline" {
		next = models.InterviewDeclined
	}
	if !interview.Status.CanTransition(next) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot move interview from '%s' to '%s'", interview.Status, next),
		})
	}

	interview.Status = next
	if err := database.DB.Save(&interview).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update interview"})
	}

	go func() {
		subject := fmt.Sprintf("Interview %s: %s", next, interview.Application.Job.Title)
		body := fmt.Sprintf("<p>The candidate has <strong>%sed</strong> the interview scheduled for %s.</p>",
			req.Response, interview.ScheduledAt.Format("Monday, Jan 2 2006 at 3:04 PM"))
		services.EmailIfEnabled(interview.Application.Job.SchoolID, services.PrefInterviewReminders, subject, body)
	}()

	return c.JSON(interview)
}

// Cancel lets either side cancel an interview that has not taken place.
func (h *InterviewHandler) Cancel(c *fiber.Ctx) error {
	return h.close(c, models.InterviewCanceled, true)
}

// Complete marks a confirmed interview as done. School side only.
func (h *InterviewHandler) Complete(c *fiber.Ctx) error {
	return h.close(c, models.InterviewCompleted, false)
}

func (h *InterviewHandler) close(c *fiber.Ctx, next models.InterviewStatus, teacherAllowed bool) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid interview id"})
	}

	var interview models.Interview
	if err := database.DB.Preload("Application").Preload("Application.Job").
		First(&interview, "id = ?", interviewID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Interview not found"})
	}

	isSchool := interview.Application.Job.SchoolID == userID
	isTeacher := interview.Application.TeacherID == userID
	if !isSchool && !(teacherAllowed && isTeacher) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have permission to update this interview."})
	}

	if !interview.Status.CanTransition(next) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot move interview from '%s' to '%s'", interview.Status, next),
		})
	}

	interview.Status = next
	if err := database.DB.Save(&interview).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update interview"})
	}

	return c.JSON(interview)
}

// GetMyInterviews lists interviews for the caller, upcoming first. Teachers
// see interviews on their applications, schools see interviews on their jobs.
func (h *InterviewHandler) GetMyInterviews(c *fiber.Ctx) error {
	userID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	role, err := h.IDs.CurrentRole(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	query := database.DB.Preload("Application").Preload("Application.Job").
		Joins("JOIN applications ON applications.id = interviews.application_id")
	if role == identity.RoleSchool {
		query = query.Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.school_id = ?", userID)
	} else {
		query = query.Where("applications.teacher_id = ?", userID)
	}

	var interviews []models.Interview
	query.Order("interviews.scheduled_at asc").Find(&interviews)

	return c.JSON(interviews)
}
