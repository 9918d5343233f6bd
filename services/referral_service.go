package services

import (
	"log"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompleteReferralIfApplicable marks a pending referral completed once the
// referred teacher finishes onboarding, and thanks the referrer.
func CompleteReferralIfApplicable(referredUserID uuid.UUID) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var referral models.Referral
		if err := tx.Preload("Referrer").Where("referred_user_id = ? AND status = ?", referredUserID, "pending").First(&referral).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		referral.Status = "completed"
		if err := tx.Save(&referral).Error; err != nil {
			return err
		}

		go notifications.SendEmail(
			referral.Referrer.FullName,
			referral.Referrer.Email,
			"Your Referral Joined ChalkRoute!",
			"<h1>Thank you!</h1><p>A teacher you referred has completed onboarding and is now visible to schools.</p>",
		)

		return nil
	})

	if err != nil {
		log.Printf("🔥 Error processing referral for user %s: %v", referredUserID, err)
	}
}
