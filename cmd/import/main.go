// Command import migrates legacy marketplace data out of the old Supabase
// project and into the Postgres database. It is a one-shot tool: run it once
// against a fresh database, check the summary, then retire the old project.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	config "github.com/chalkroute/teacher_match/configs"
	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	supabase "github.com/nedpals/supabase-go"
	"gorm.io/gorm/clause"
)

// legacyTeacher mirrors the old project's flat teachers table.
type legacyTeacher struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	FullName        string   `json:"full_name"`
	Headline        string   `json:"headline"`
	Bio             string   `json:"bio"`
	Archetype       string   `json:"archetype"`
	Subjects        []string `json:"subjects"`
	GradeLevels     []string `json:"grade_levels"`
	Location        string   `json:"location"`
	YearsExperience string   `json:"years_experience"`
	ResumeURL       string   `json:"resume_url"`
	CreatedAt       string   `json:"created_at"`
}

type legacySchool struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"contact_name"`
	SchoolName string `json:"school_name"`
	District   string `json:"district"`
	Location   string `json:"location"`
	Approved   bool   `json:"approved"`
}

type legacyJob struct {
	ID         string `json:"id"`
	SchoolID   string `json:"school_id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	GradeLevel string `json:"grade_level"`
	Location   string `json:"location"`
	Open       bool   `json:"open"`
	PostedAt   string `json:"posted_at"`
}

func main() {
	dryRun := flag.Bool("dry-run", false, "fetch and report without writing to Postgres")
	flag.Parse()

	supabaseURL := config.Config("LEGACY_SUPABASE_URL")
	supabaseKey := config.Config("LEGACY_SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		log.Fatal("🔥 LEGACY_SUPABASE_URL and LEGACY_SUPABASE_KEY must be set")
	}
	client := supabase.CreateClient(supabaseURL, supabaseKey)

	if !*dryRun {
		database.ConnectDB()
		database.Migrate()
	}

	teachers := importTeachers(client, *dryRun)
	schools := importSchools(client, *dryRun)
	jobsImported := importJobs(client, *dryRun)

	log.Printf("✅ Import complete: %d teachers, %d schools, %d jobs", teachers, schools, jobsImported)
}

func importTeachers(client *supabase.Client, dryRun bool) int {
	var rows []legacyTeacher
	if err := client.DB.From("teachers").Select("*").Execute(&rows); err != nil {
		log.Fatalf("🔥 Failed to fetch legacy teachers: %v", err)
	}

	imported := 0
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			log.Printf("⚠️ Skipping teacher with bad id %q", row.ID)
			continue
		}
		if dryRun {
			imported++
			continue
		}

		user := models.User{
			ID:       id,
			Email:    strings.ToLower(row.Email),
			FullName: row.FullName,
			Role:     "teacher",
			IsActive: true,
			// Imported accounts authenticate through password reset.
			Password: uuid.NewString(),
		}
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&user).Error; err != nil {
			log.Printf("🔥 Failed to import teacher %s: %v", id, err)
			continue
		}

		profile := models.TeacherProfile{
			UserID:      id,
			Subjects:    pq.StringArray(row.Subjects),
			GradeLevels: pq.StringArray(row.GradeLevels),
		}
		profile.Headline = optional(row.Headline)
		profile.Bio = optional(row.Bio)
		profile.Archetype = optional(row.Archetype)
		profile.Location = optional(row.Location)
		profile.YearsExperience = optional(row.YearsExperience)
		profile.ResumeURL = optional(row.ResumeURL)

		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&profile).Error; err != nil {
			log.Printf("🔥 Failed to import teacher profile %s: %v", id, err)
			continue
		}
		imported++
	}
	return imported
}

func importSchools(client *supabase.Client, dryRun bool) int {
	var rows []legacySchool
	if err := client.DB.From("schools").Select("*").Execute(&rows); err != nil {
		log.Fatalf("🔥 Failed to fetch legacy schools: %v", err)
	}

	imported := 0
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			log.Printf("⚠️ Skipping school with bad id %q", row.ID)
			continue
		}
		if dryRun {
			imported++
			continue
		}

		user := models.User{
			ID:       id,
			Email:    strings.ToLower(row.Email),
			FullName: row.FullName,
			Role:     "school",
			IsActive: true,
			Password: uuid.NewString(),
		}
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&user).Error; err != nil {
			log.Printf("🔥 Failed to import school %s: %v", id, err)
			continue
		}

		status := models.SchoolStatusPending
		if row.Approved {
			status = models.SchoolStatusActive
		}
		profile := models.SchoolProfile{
			UserID:     id,
			SchoolName: row.SchoolName,
			District:   optional(row.District),
			Location:   optional(row.Location),
			Status:     status,
		}
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&profile).Error; err != nil {
			log.Printf("🔥 Failed to import school profile %s: %v", id, err)
			continue
		}
		imported++
	}
	return imported
}

func importJobs(client *supabase.Client, dryRun bool) int {
	var rows []legacyJob
	if err := client.DB.From("jobs").Select("*").Execute(&rows); err != nil {
		log.Fatalf("🔥 Failed to fetch legacy jobs: %v", err)
	}

	imported := 0
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			log.Printf("⚠️ Skipping job with bad id %q", row.ID)
			continue
		}
		schoolID, err := uuid.Parse(row.SchoolID)
		if err != nil {
			log.Printf("⚠️ Skipping job %s with bad school id %q", id, row.SchoolID)
			continue
		}
		if dryRun {
			imported++
			continue
		}

		postedAt := time.Now()
		if t, err := time.Parse(time.RFC3339, row.PostedAt); err == nil {
			postedAt = t
		}
		status := models.JobStatusClosed
		if row.Open {
			status = models.JobStatusOpen
		}

		job := models.Job{
			ID:         id,
			SchoolID:   schoolID,
			Title:      row.Title,
			Subject:    row.Subject,
			GradeLevel: row.GradeLevel,
			Location:   row.Location,
			Status:     status,
			PostedAt:   postedAt,
		}
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&job).Error; err != nil {
			log.Printf("🔥 Failed to import job %s: %v", id, err)
			continue
		}
		imported++
	}
	return imported
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
