package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SchoolID uuid.UUID `gorm:"not null;index" json:"school_id"`

	Title          string  `gorm:"size:255;not null" json:"title"`
	Subject        string  `gorm:"size:100;not null" json:"subject"`
	GradeLevel     string  `gorm:"size:20;not null" json:"grade_level"`
	Location       string  `gorm:"size:255;not null" json:"location"`
	Description    string  `gorm:"type:text" json:"description"`
	EmploymentType string  `gorm:"size:30;default:'full_time'" json:"employment_type"`
	SalaryRange    *string `gorm:"size:100" json:"salary_range"`

	Status    string     `gorm:"size:20;not null;default:'open'" json:"status"`
	PostedAt  time.Time  `gorm:"not null" json:"posted_at"`
	ExpiresAt *time.Time `json:"expires_at"`

	School SchoolProfile `gorm:"foreignkey:SchoolID;references:UserID" json:"school,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusFilled = "filled"
)
