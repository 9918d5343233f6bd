package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreference holds a user's opt-in flags for transactional email.
// Every flag defaults to on; a missing row means "all enabled".
type NotificationPreference struct {
	UserID uuid.UUID `gorm:"primary_key" json:"user_id"`

	EmailNewMatches         bool `gorm:"default:true" json:"email_new_matches"`
	EmailApplicationUpdates bool `gorm:"default:true" json:"email_application_updates"`
	EmailMessages           bool `gorm:"default:true" json:"email_messages"`
	EmailInterviewReminders bool `gorm:"default:true" json:"email_interview_reminders"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
