package models

import (
	"time"

	"github.com/google/uuid"
)

// Match is the scored compatibility relationship between one teacher and one
// job. Rows are created lazily and recomputed in place; the (teacher_id,
// job_id) pair is unique so recomputation is an upsert, never an insert of a
// second row.
type Match struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID uuid.UUID `gorm:"not null;uniqueIndex:idx_matches_teacher_job" json:"teacher_id"`
	JobID     uuid.UUID `gorm:"not null;uniqueIndex:idx_matches_teacher_job" json:"job_id"`

	MatchScore  int     `gorm:"not null;default:0" json:"match_score"`
	MatchReason *string `gorm:"type:text" json:"match_reason"`

	IsFavorited bool `gorm:"default:false" json:"is_favorited"`
	IsHidden    bool `gorm:"default:false" json:"is_hidden"`

	Teacher TeacherProfile `gorm:"foreignkey:TeacherID;references:UserID" json:"-"`
	Job     Job            `gorm:"foreignkey:JobID" json:"job,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
