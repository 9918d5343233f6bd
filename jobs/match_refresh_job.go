package jobs

import (
	"log"
	"time"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/services"
	"github.com/google/uuid"
)

// ExpireStaleJobs closes open postings whose expiry has passed so they stop
// appearing in searches and ranked match lists.
func ExpireStaleJobs() {
	log.Println("Running job: ExpireStaleJobs...")

	result := database.DB.Model(&models.Job{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.JobStatusOpen, time.Now()).
		Update("status", models.JobStatusClosed)
	if result.Error != nil {
		log.Printf("Error expiring jobs: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("✅ Expired %d stale job postings", result.RowsAffected)
	}
}

// RefreshRecentMatches recomputes scores for teachers whose profiles changed
// in the last day, catching any update that slipped past the inline refresh
// hooks.
func RefreshRecentMatches() {
	log.Println("Running job: RefreshRecentMatches...")

	since := time.Now().Add(-24 * time.Hour)

	var teacherIDs []string
	err := database.DB.Model(&models.TeacherProfile{}).
		Where("onboarding_complete = ? AND updated_at > ?", true, since).
		Pluck("user_id", &teacherIDs).Error
	if err != nil {
		log.Printf("Error loading recently updated teachers: %v", err)
		return
	}

	for _, id := range teacherIDs {
		teacherID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		if err := services.RefreshMatchesForTeacher(teacherID); err != nil {
			log.Printf("🔥 Failed to refresh matches for teacher %s: %v", teacherID, err)
		}
	}
	if len(teacherIDs) > 0 {
		log.Printf("✅ Refreshed matches for %d teachers", len(teacherIDs))
	}
}
