package models_test

import (
	"testing"

	"github.com/chalkroute/teacher_match/models"
)

func TestParseInterviewStatus_ValidValues(t *testing.T) {
	valid := []string{"proposed", "confirmed", "completed", "declined", "canceled"}
	for _, s := range valid {
		got, err := models.ParseInterviewStatus(s)
		if err != nil {
			t.Errorf("ParseInterviewStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseInterviewStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseInterviewStatus_InvalidValue(t *testing.T) {
	_, err := models.ParseInterviewStatus("scheduled")
	if err == nil {
		t.Error("ParseInterviewStatus(\"scheduled\") expected error, got nil")
	}
}

func TestInterviewCanTransition_Valid(t *testing.T) {
	cases := []struct {
		from models.InterviewStatus
		to   models.InterviewStatus
	}{
		{models.InterviewProposed, models.InterviewConfirmed},
		{models.InterviewProposed, models.InterviewDeclined},
		{models.InterviewProposed, models.InterviewCanceled},
		{models.InterviewConfirmed, models.InterviewCompleted},
		{models.InterviewConfirmed, models.InterviewCanceled},
	}
	for _, c := range cases {
		if !c.from.CanTransition(c.to) {
			t.Errorf("CanTransition(%s → %s) should be true", c.from, c.to)
		}
	}
}

func TestInterviewCanTransition_Forbidden(t *testing.T) {
	cases := []struct {
		from models.InterviewStatus
		to   models.InterviewStatus
	}{
		{models.InterviewProposed, models.InterviewCompleted}, // must be confirmed first
		{models.InterviewConfirmed, models.InterviewDeclined}, // declining is only for proposals
		{models.InterviewConfirmed, models.InterviewProposed},
	}
	for _, c := range cases {
		if c.from.CanTransition(c.to) {
			t.Errorf("CanTransition(%s → %s) should be false", c.from, c.to)
		}
	}
}

func TestInterviewCanTransition_FromTerminal(t *testing.T) {
	terminals := []models.InterviewStatus{
		models.InterviewCompleted,
		models.InterviewDeclined,
		models.InterviewCanceled,
	}
	targets := []models.InterviewStatus{
		models.InterviewProposed, models.InterviewConfirmed,
		models.InterviewCompleted, models.InterviewDeclined, models.InterviewCanceled,
	}
	for _, from := range terminals {
		for _, to := range targets {
			if from.CanTransition(to) {
				t.Errorf("CanTransition(%s → %s) should be false (terminal state)", from, to)
			}
		}
	}
}
