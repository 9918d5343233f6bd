package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID `gorm:"not null;index" json:"application_id"`

	ScheduledAt    time.Time       `gorm:"not null" json:"scheduled_at"`
	LocationOrLink string          `gorm:"size:255;not null" json:"location_or_link"`
	Status         InterviewStatus `gorm:"size:20;not null;default:'proposed'" json:"status"`
	Notes          *string         `gorm:"type:text" json:"notes"`

	// ConfirmationCode is quoted by the teacher when confirming in person.
	ConfirmationCode string `gorm:"size:8;not null" json:"confirmation_code"`

	Application Application `gorm:"foreignkey:ApplicationID" json:"application,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Interview status graph:
//
//	proposed ──► confirmed ──► completed
//	    │            │
//	    │            └──► canceled
//	    ├──► declined
//	    └──► canceled
//
// completed, declined and canceled are terminal. The teacher confirms or
// declines a proposal; either side may cancel before it takes place.
type InterviewStatus string

const (
	InterviewProposed  InterviewStatus = "proposed"
	InterviewConfirmed InterviewStatus = "confirmed"
	InterviewCompleted InterviewStatus = "completed"
	InterviewDeclined  InterviewStatus = "declined"
	InterviewCanceled  InterviewStatus = "canceled"
)

var interviewTransitions = map[InterviewStatus][]InterviewStatus{
	InterviewProposed:  {InterviewConfirmed, InterviewDeclined, InterviewCanceled},
	InterviewConfirmed: {InterviewCompleted, InterviewCanceled},
}

// ParseInterviewStatus converts a raw string to an InterviewStatus, returning
// an error for unknown values.
func ParseInterviewStatus(s string) (InterviewStatus, error) {
	st := InterviewStatus(s)
	switch st {
	case InterviewProposed, InterviewConfirmed, InterviewCompleted,
		InterviewDeclined, InterviewCanceled:
		return st, nil
	}
	return "", fmt.Errorf("unknown interview status %q", s)
}

// CanTransition reports whether moving from → to is permitted.
func (from InterviewStatus) CanTransition(to InterviewStatus) bool {
	for _, s := range interviewTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
