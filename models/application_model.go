package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID     uuid.UUID `gorm:"not null;uniqueIndex:idx_applications_job_teacher" json:"job_id"`
	TeacherID uuid.UUID `gorm:"not null;uniqueIndex:idx_applications_job_teacher" json:"teacher_id"`

	Status      ApplicationStatus `gorm:"size:20;not null;default:'submitted'" json:"status"`
	CoverLetter *string           `gorm:"type:text" json:"cover_letter"`
	AppliedAt   time.Time         `gorm:"not null" json:"applied_at"`

	Job     Job            `gorm:"foreignkey:JobID" json:"job,omitempty"`
	Teacher TeacherProfile `gorm:"foreignkey:TeacherID;references:UserID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
