package models

import (
	"time"

	"github.com/google/uuid"
)

// School accounts start pending and stay invisible until an admin approves
// them.
const (
	SchoolStatusPending   = "pending"
	SchoolStatusActive    = "active"
	SchoolStatusSuspended = "suspended"
	SchoolStatusRejected  = "rejected"
)

type SchoolProfile struct {
	UserID     uuid.UUID `gorm:"primary_key" json:"user_id"`
	SchoolName string    `gorm:"size:255;not null" json:"school_name"`
	District   *string   `gorm:"size:255" json:"district"`
	Location   *string   `gorm:"size:255" json:"location"`
	About      *string   `gorm:"type:text" json:"about"`
	Website    *string   `gorm:"size:255" json:"website"`
	Status     string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
