package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	IDs *identity.Service
}

func NewApplicationHandler(ids *identity.Service) *ApplicationHandler {
	return &ApplicationHandler{IDs: ids}
}

type ApplyRequest struct {
	CoverLetter *string `json:"cover_letter"`
}

// Apply submits the teacher's application for an open job. A teacher can
// apply to a job at most once.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	teacherID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job id"})
	}

	req := new(ApplyRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	var job models.Job
	if err := database.DB.Preload("School").First(&job, "id = ?", jobID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	if job.Status != models.JobStatusOpen {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This job is no longer accepting applications."})
	}

	var existing models.Application
	if err := database.DB.First(&existing, "job_id = ? AND teacher_id = ?", jobID, teacherID).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already applied to this job."})
	}

	application := models.Application{
		JobID:       jobID,
		TeacherID:   teacherID,
		Status:      models.ApplicationSubmitted,
		CoverLetter: req.CoverLetter,
		AppliedAt:   time.Now(),
	}
	if err := database.DB.Create(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit application"})
	}

	go func() {
		var teacher models.User
		if err := database.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
			log.Printf("🔥 Failed to load teacher for application email: %v", err)
			return
		}
		body := fmt.Sprintf("<p>%s has applied for your opening <strong>%s</strong>.</p><p>Log in to review the application.</p>", teacher.FullName, job.Title)
		services.EmailIfEnabled(job.SchoolID, services.PrefApplicationUpdates, "New application received", body)
	}()

	return c.Status(fiber.StatusCreated).JSON(application)
}

func (h *ApplicationHandler) GetMyApplications(c *fiber.Ctx) error {
	teacherID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var applications []models.Application
	database.DB.Preload("Job").Preload("Job.School").
		Where("teacher_id = ?", teacherID).
		Order("applied_at desc").
		Find(&applications)

	return c.JSON(applications)
}

// GetJobApplications lists applications for one of the school's own jobs.
func (h *ApplicationHandler) GetJobApplications(c *fiber.Ctx) error {
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

	var applications []models.Application
	database.DB.Preload("Teacher").Preload("Teacher.User").
		Where("job_id = ?", jobID).
		Order("applied_at asc").
		Find(&applications)

	return c.JSON(applications)
}

type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an application along the pipeline. Only the school that
// owns the job can move it, transitions outside the pipeline are rejected,
// and a hire kicks off the offer letter in the background.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	schoolID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	req := new(ApplicationStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	next, err := models.ParseApplicationStatus(req.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if next == models.ApplicationWithdrawn {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the applicant can withdraw an application."})
	}

	var application models.Application
	if err := database.DB.Preload("Job").First(&application, "id = ?", applicationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if application.Job.SchoolID != schoolID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have permission to update this application."})
	}

	if !application.Status.CanTransition(next) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot move application from '%s' to '%s'", application.Status, next),
		})
	}

	application.Status = next
	if err := database.DB.Save(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application"})
	}

	go h.notifyStatusChange(application)
	if next == models.ApplicationHired {
		go services.GenerateOfferLetter(application.ID)
	}

	return c.JSON(application)
}

// Withdraw lets the teacher withdraw their own application at any
// non-terminal stage.
func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	teacherID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	var application models.Application
	if err := database.DB.First(&application, "id = ? AND teacher_id = ?", applicationID, teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	if !application.Status.CanTransition(models.ApplicationWithdrawn) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot withdraw an application that is '%s'", application.Status),
		})
	}

	application.Status = models.ApplicationWithdrawn
	if err := database.DB.Save(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to withdraw application"})
	}

	return c.JSON(application)
}

func (h *ApplicationHandler) notifyStatusChange(application models.Application) {
	var job models.Job
	if err := database.DB.First(&job, "id = ?", application.JobID).Error; err != nil {
		log.Printf("🔥 Failed to load job for status email: %v", err)
		return
	}
	subject := fmt.Sprintf("Update on your application for %s", job.Title)
	body := fmt.Sprintf("<p>Your application for <strong>%s</strong> is now <strong>%s</strong>.</p>", job.Title, application.Status)
	services.EmailIfEnabled(application.TeacherID, services.PrefApplicationUpdates, subject, body)
}
