package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TeacherProfile struct {
	UserID   uuid.UUID `gorm:"primary_key" json:"user_id"`
	Headline *string   `gorm:"size:255" json:"headline"`
	Bio      *string   `gorm:"type:text" json:"bio"`

	// Archetype stays nil until the onboarding quiz has been completed.
	Archetype       *string        `gorm:"size:40" json:"archetype"`
	Subjects        pq.StringArray `gorm:"type:text[]" json:"subjects"`
	GradeLevels     pq.StringArray `gorm:"type:text[]" json:"grade_levels"`
	Certifications  pq.StringArray `gorm:"type:text[]" json:"certifications"`
	Location        *string        `gorm:"size:255" json:"location"`
	YearsExperience *string        `gorm:"size:30" json:"years_experience"`

	ResumeURL     *string `gorm:"size:255" json:"resume_url"`
	IntroVideoURL *string `gorm:"size:255" json:"intro_video_url"`

	OnboardingComplete bool `gorm:"default:false" json:"onboarding_complete"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
