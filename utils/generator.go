package utils

import (
	"math/rand"
	"time"

	"github.com/chalkroute/teacher_match/models"
	"gorm.io/gorm"
)

const referralCodeLength = 8
const confirmationCodeLength = 6
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomCode(r *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = letterBytes[r.Intn(len(letterBytes))]
	}
	return string(b)
}

func GenerateUniqueReferralCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		code := randomCode(seededRand, referralCodeLength)

		var user models.User
		err := tx.Where("referral_code = ?", code).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}

// GenerateConfirmationCode produces the short code a teacher quotes when
// confirming an interview.
func GenerateConfirmationCode() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	return randomCode(seededRand, confirmationCodeLength)
}
