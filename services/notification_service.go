package services

import (
	"log"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrefKind selects which opt-in flag guards a notification email.
type PrefKind int

const (
	PrefNewMatches PrefKind = iota
	PrefApplicationUpdates
	PrefMessages
	PrefInterviewReminders
)

func prefAllows(p models.NotificationPreference, kind PrefKind) bool {
	switch kind {
	case PrefNewMatches:
		return p.EmailNewMatches
	case PrefApplicationUpdates:
		return p.EmailApplicationUpdates
	case PrefMessages:
		return p.EmailMessages
	case PrefInterviewReminders:
		return p.EmailInterviewReminders
	}
	return false
}

// EmailIfEnabled sends a notification email unless the recipient has opted
// out of this kind. A missing preference row means all kinds are enabled.
func EmailIfEnabled(userID uuid.UUID, kind PrefKind, subject, htmlContent string) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("🔥 Cannot notify user %s: %v", userID, err)
		return
	}

	var pref models.NotificationPreference
	err := database.DB.First(&pref, "user_id = ?", userID).Error
	if err == nil && !prefAllows(pref, kind) {
		return
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Printf("Failed to load notification preferences for %s, sending anyway: %v", userID, err)
	}

	notifications.SendEmail(user.FullName, user.Email, subject, htmlContent)
}
