package models_test

import (
	"testing"

	"github.com/chalkroute/teacher_match/models"
)

func TestParseReviewType_ValidValues(t *testing.T) {
	valid := []string{"teacher_of_school", "school_of_teacher"}
	for _, s := range valid {
		got, err := models.ParseReviewType(s)
		if err != nil {
			t.Errorf("ParseReviewType(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseReviewType(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseReviewType_InvalidValues(t *testing.T) {
	for _, s := range []string{"", "teacher", "school", "peer_review"} {
		if _, err := models.ParseReviewType(s); err == nil {
			t.Errorf("ParseReviewType(%q) expected error, got nil", s)
		}
	}
}
