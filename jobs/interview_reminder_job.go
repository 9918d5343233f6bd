package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/services"
)

// SendInterviewReminders emails both sides of every confirmed interview
// starting in roughly an hour. The 5 minute window matches the cron cadence
// so each interview is picked up exactly once.
func SendInterviewReminders() {
	log.Println("Running job: SendInterviewReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcoming []models.Interview
	err := database.DB.
		Preload("Application").
		Preload("Application.Job").
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", models.InterviewConfirmed, lowerBound, upperBound).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming interviews: %v", err)
		return
	}

	for _, interview := range upcoming {
		log.Printf("Sending reminder for interview ID: %s", interview.ID)

		subject := "Reminder: Your Interview Starts in 1 Hour!"
		body := fmt.Sprintf(
			"<h1>Interview Reminder</h1><p>Your interview for <strong>%s</strong> starts at %s.</p><p><b>Location / link:</b> %s</p>",
			interview.Application.Job.Title,
			interview.ScheduledAt.Format(time.Kitchen),
			interview.LocationOrLink,
		)

		services.EmailIfEnabled(interview.Application.TeacherID, services.PrefInterviewReminders, subject, body)
		services.EmailIfEnabled(interview.Application.Job.SchoolID, services.PrefInterviewReminders, subject, body)
	}
}
