package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is one prompt of the onboarding archetype quiz. Each option
// carries the archetype it counts toward; the submission with the most votes
// wins.
type QuizQuestion struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Prompt   string    `gorm:"type:text;not null" json:"prompt"`
	Position int       `gorm:"not null" json:"position"`

	Options []QuizOption `gorm:"foreignkey:QuestionID" json:"options"`

	CreatedAt time.Time `json:"-"`
}

type QuizOption struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuestionID uuid.UUID `gorm:"not null;index" json:"question_id"`
	Label      string    `gorm:"size:255;not null" json:"label"`
	Archetype  string    `gorm:"size:40;not null" json:"-"`
}

type QuizSubmission struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID uuid.UUID `gorm:"not null;index" json:"teacher_id"`
	Archetype string    `gorm:"size:40;not null" json:"archetype"`

	Answers []QuizAnswer `gorm:"foreignkey:SubmissionID" json:"answers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type QuizAnswer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubmissionID uuid.UUID `gorm:"not null;index" json:"-"`
	QuestionID   uuid.UUID `gorm:"not null" json:"question_id"`
	OptionID     uuid.UUID `gorm:"not null" json:"option_id"`
}
