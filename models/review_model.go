package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReviewType is a closed set: reviews flow either from a teacher about a
// school or from a school about a teacher, never anything else.
type ReviewType string

const (
	ReviewTeacherOfSchool ReviewType = "teacher_of_school"
	ReviewSchoolOfTeacher ReviewType = "school_of_teacher"
)

// ParseReviewType converts a raw string to a ReviewType, returning an error
// for unknown values.
func ParseReviewType(s string) (ReviewType, error) {
	rt := ReviewType(s)
	switch rt {
	case ReviewTeacherOfSchool, ReviewSchoolOfTeacher:
		return rt, nil
	}
	return "", fmt.Errorf("unknown review type %q", s)
}

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AuthorID  uuid.UUID `gorm:"not null;uniqueIndex:idx_reviews_author_subject" json:"author_id"`
	SubjectID uuid.UUID `gorm:"not null;uniqueIndex:idx_reviews_author_subject" json:"subject_id"`

	ReviewType ReviewType `gorm:"size:30;not null" json:"review_type"`
	Rating     int        `gorm:"not null" json:"rating"`
	Comment    string     `gorm:"type:text" json:"comment"`

	Author  User `gorm:"foreignkey:AuthorID" json:"author,omitempty"`
	Subject User `gorm:"foreignkey:SubjectID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
