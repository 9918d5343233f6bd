package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JobHandler struct {
	IDs *identity.Service
}

func NewJobHandler(ids *identity.Service) *JobHandler {
	return &JobHandler{IDs: ids}
}

type JobRequest struct {
	Title          string  `json:"title" validate:"required"`
	Subject        string  `json:"subject" validate:"required"`
	GradeLevel     string  `json:"grade_level" validate:"required"`
	Location       string  `json:"location" validate:"required"`
	Description    string  `json:"description"`
	EmploymentType string  `json:"employment_type" validate:"omitempty,oneof=full_time part_time substitute"`
	SalaryRange    *string `json:"salary_range"`
	ExpiresAt      *string `json:"expires_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// CreateJob posts a new opening and kicks off match scoring against every
// onboarded teacher in the background.
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	schoolID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var school models.SchoolProfile
	if err := database.DB.First(&school, "user_id = ?", schoolID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "School profile not found"})
	}
	if school.Status != models.SchoolStatusActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "School must be approved before posting jobs"})
	}

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	job := models.Job{
		SchoolID:    schoolID,
		Title:       req.Title,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		Location:    req.Location,
		Description: req.Description,
		SalaryRange: req.SalaryRange,
		PostedAt:    time.Now(),
	}
	if req.EmploymentType != "" {
		job.EmploymentType = req.EmploymentType
	}
	if req.ExpiresAt != nil {
		expires, _ := time.Parse(time.RFC3339, *req.ExpiresAt)
		job.ExpiresAt = &expires
	}

	if err := database.DB.Create(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create job"})
	}

	go func() {
		if err := services.RefreshMatchesForJob(job.ID); err != nil {
			log.Printf("🔥 Match refresh after job creation failed for %s: %v", job.ID, err)
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(job)
}

// UpdateJob edits a posting and recomputes its matches, since scoring inputs
// may have changed.
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	schoolID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	jobID := c.Params("jobId")

	var job models.Job
	if err := database.DB.First(&job, "id = ? AND school_id = ?", jobID, schoolID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found or you do not have permission to edit it."})
	}

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Subject != "" {
		job.Subject = req.Subject
	}
	if req.GradeLevel != "" {
		job.GradeLevel = req.GradeLevel
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.EmploymentType != "" {
		job.EmploymentType = req.EmploymentType
	}
	if req.SalaryRange != nil {
		job.SalaryRange = req.SalaryRange
	}

	if err := database.DB.Save(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update job"})
	}

	go func() {
		if err := services.RefreshMatchesForJob(job.ID); err != nil {
			log.Printf("🔥 Match refresh after job edit failed for %s: %v", job.ID, err)
		}
	}()

	return c.JSON(job)
}

type JobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed filled"`
}

func (h *JobHandler) SetJobStatus(c *fiber.Ctx) error {
	schoolID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	jobID := c.Params("jobId")

	var req JobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var job models.Job
	if err := database.DB.First(&job, "id = ? AND school_id = ?", jobID, schoolID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found or you do not have permission to edit it."})
	}

	job.Status = req.Status
	if err := database.DB.Save(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update job status"})
	}

	return c.JSON(job)
}

func (h *JobHandler) GetMyJobs(c *fiber.Ctx) error {
	schoolID, err := h.IDs.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var jobs []models.Job
	database.DB.Where("school_id = ?", schoolID).Order("posted_at desc").Find(&jobs)

	return c.JSON(jobs)
}

// ListJobs is the public browse endpoint with basic filters.
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	offset := (page - 1) * pageSize

	query := database.DB.Preload("School").
		Joins("JOIN school_profiles ON school_profiles.user_id = jobs.school_id").
		Where("jobs.status = ? AND school_profiles.status = ?", models.JobStatusOpen, models.SchoolStatusActive)

	if subject := c.Query("subject"); subject != "" {
		query = query.Where("LOWER(jobs.subject) = LOWER(?)", subject)
	}
	if gradeLevel := c.Query("grade_level"); gradeLevel != "" {
		query = query.Where("jobs.grade_level = ?", gradeLevel)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("jobs.location ILIKE ?", "%"+location+"%")
	}

	var jobs []models.Job
	if err := query.Order("jobs.posted_at desc").Limit(pageSize).Offset(offset).Find(&jobs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve jobs"})
	}

	return c.JSON(jobs)
}

func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if _, err := uuid.Parse(jobID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job id"})
	}

	var job models.Job
	if err := database.DB.Preload("School").Preload("School.User").First(&job, "id = ?", jobID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	return c.JSON(job)
}
