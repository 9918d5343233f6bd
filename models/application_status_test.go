package models_test

import (
	"testing"

	"github.com/chalkroute/teacher_match/models"
)

// ── ParseApplicationStatus ─────────────────────────────────────────────────

func TestParseApplicationStatus_ValidValues(t *testing.T) {
	valid := []string{"submitted", "under_review", "interview", "offer", "hired", "rejected", "withdrawn"}
	for _, s := range valid {
		got, err := models.ParseApplicationStatus(s)
		if err != nil {
			t.Errorf("ParseApplicationStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseApplicationStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseApplicationStatus_InvalidValue(t *testing.T) {
	_, err := models.ParseApplicationStatus("pending")
	if err == nil {
		t.Error("ParseApplicationStatus(\"pending\") expected error, got nil")
	}
}

func TestParseApplicationStatus_EmptyString(t *testing.T) {
	_, err := models.ParseApplicationStatus("")
	if err == nil {
		t.Error("ParseApplicationStatus(\"\") expected error, got nil")
	}
}

// ── CanTransition — valid (forward) transitions ────────────────────────────

func TestApplicationCanTransition_ValidForward(t *testing.T) {
	cases := []struct {
		from models.ApplicationStatus
		to   models.ApplicationStatus
	}{
		{models.ApplicationSubmitted, models.ApplicationUnderReview},
		{models.ApplicationUnderReview, models.ApplicationInterview},
		{models.ApplicationInterview, models.ApplicationOffer},
		{models.ApplicationOffer, models.ApplicationHired},
	}
	for _, c := range cases {
		if !c.from.CanTransition(c.to) {
			t.Errorf("CanTransition(%s → %s) should be true", c.from, c.to)
		}
	}
}

// ── CanTransition — rejection and withdrawal from any active stage ─────────

func TestApplicationCanTransition_ToTerminals(t *testing.T) {
	active := []models.ApplicationStatus{
		models.ApplicationSubmitted,
		models.ApplicationUnderReview,
		models.ApplicationInterview,
		models.ApplicationOffer,
	}
	for _, from := range active {
		if !from.CanTransition(models.ApplicationRejected) {
			t.Errorf("CanTransition(%s → rejected) should be true", from)
		}
		if !from.CanTransition(models.ApplicationWithdrawn) {
			t.Errorf("CanTransition(%s → withdrawn) should be true", from)
		}
	}
}

// ── CanTransition — terminal states have no outgoing transitions ───────────

func TestApplicationCanTransition_FromTerminal(t *testing.T) {
	terminals := []models.ApplicationStatus{
		models.ApplicationHired,
		models.ApplicationRejected,
		models.ApplicationWithdrawn,
	}
	targets := []models.ApplicationStatus{
		models.ApplicationSubmitted, models.ApplicationUnderReview,
		models.ApplicationInterview, models.ApplicationOffer,
		models.ApplicationHired, models.ApplicationRejected, models.ApplicationWithdrawn,
	}
	for _, from := range terminals {
		if !from.IsTerminal() {
			t.Errorf("IsTerminal(%s) should be true", from)
		}
		for _, to := range targets {
			if from.CanTransition(to) {
				t.Errorf("CanTransition(%s → %s) should be false (terminal state)", from, to)
			}
		}
	}
}

// ── CanTransition — skip-level transitions are forbidden ───────────────────

func TestApplicationCanTransition_SkipLevel(t *testing.T) {
	cases := []struct {
		from models.ApplicationStatus
		to   models.ApplicationStatus
	}{
		{models.ApplicationSubmitted, models.ApplicationInterview},
		{models.ApplicationSubmitted, models.ApplicationOffer},
		{models.ApplicationSubmitted, models.ApplicationHired},
		{models.ApplicationUnderReview, models.ApplicationOffer},
		{models.ApplicationUnderReview, models.ApplicationHired},
		{models.ApplicationInterview, models.ApplicationHired},
	}
	for _, c := range cases {
		if c.from.CanTransition(c.to) {
			t.Errorf("CanTransition(%s → %s) should be false (skip-level)", c.from, c.to)
		}
	}
}

// ── CanTransition — backwards movements are forbidden ──────────────────────

func TestApplicationCanTransition_Backwards(t *testing.T) {
	cases := []struct {
		from models.ApplicationStatus
		to   models.ApplicationStatus
	}{
		{models.ApplicationUnderReview, models.ApplicationSubmitted},
		{models.ApplicationInterview, models.ApplicationUnderReview},
		{models.ApplicationOffer, models.ApplicationInterview},
	}
	for _, c := range cases {
		if c.from.CanTransition(c.to) {
			t.Errorf("CanTransition(%s → %s) should be false (backwards)", c.from, c.to)
		}
	}
}

// ── CanTransition — self-transitions are forbidden ─────────────────────────

func TestApplicationCanTransition_Self(t *testing.T) {
	all := []models.ApplicationStatus{
		models.ApplicationSubmitted, models.ApplicationUnderReview,
		models.ApplicationInterview, models.ApplicationOffer,
		models.ApplicationHired, models.ApplicationRejected, models.ApplicationWithdrawn,
	}
	for _, s := range all {
		if s.CanTransition(s) {
			t.Errorf("CanTransition(%s → %s) should be false (self)", s, s)
		}
	}
}
