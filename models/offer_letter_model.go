package models

import (
	"time"

	"github.com/google/uuid"
)

type OfferLetter struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ApplicationID uuid.UUID `gorm:"not null;unique"`
	LetterURL     string    `gorm:"size:255;not null"`
	IssuedAt      time.Time `gorm:"not null"`

	Application Application `gorm:"foreignkey:ApplicationID"`

	CreatedAt time.Time
}
