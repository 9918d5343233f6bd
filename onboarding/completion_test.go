package onboarding_test

import (
	"testing"

	"github.com/chalkroute/teacher_match/models"
	"github.com/chalkroute/teacher_match/onboarding"
)

func str(s string) *string { return &s }

func TestCompletion_SevenOfTen(t *testing.T) {
	// 7 populated fields out of 10, including one populated array field
	// (subjects) and one empty array field (grade_levels).
	u := models.User{
		FullName:          "Dana Whitfield",
		ProfilePictureURL: str("https://cdn.example.com/dana.jpg"),
	}
	p := models.TeacherProfile{
		Headline:  str("Elementary math specialist"),
		Bio:       str("Twelve years in Title I schools."),
		Archetype: str("nurturer"),
		Subjects:  []string{"math"},
		Location:  str("Denver, CO"),
		// grade_levels, years_experience, resume_url left empty
	}

	if got := onboarding.TeacherCompletion(u, p); got != 70 {
		t.Errorf("TeacherCompletion = %d, want 70", got)
	}
}

func TestCompletion_Rounding(t *testing.T) {
	cases := []struct {
		present int
		total   int
		want    int
	}{
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67}, // 66.67 rounds up
		{5, 10, 50},
		{10, 10, 100},
	}
	for _, c := range cases {
		fields := make([]onboarding.Field, c.total)
		for i := range fields {
			fields[i] = onboarding.Field{Name: "f", Present: i < c.present}
		}
		if got := onboarding.Completion(fields); got != c.want {
			t.Errorf("Completion(%d of %d) = %d, want %d", c.present, c.total, got, c.want)
		}
	}
}

func TestCompletion_EmptyListIsZero(t *testing.T) {
	if got := onboarding.Completion(nil); got != 0 {
		t.Errorf("Completion(nil) = %d, want 0", got)
	}
}

func TestCompletion_EmptyStringNotPresent(t *testing.T) {
	p := models.TeacherProfile{Headline: str("")}
	fields := onboarding.TeacherRequiredFields(models.User{}, p)
	for _, f := range fields {
		if f.Name == "headline" && f.Present {
			t.Error("empty-string headline counted as present")
		}
	}
}

func TestIsComplete(t *testing.T) {
	if onboarding.IsComplete(99) {
		t.Error("IsComplete(99) should be false")
	}
	if !onboarding.IsComplete(100) {
		t.Error("IsComplete(100) should be true")
	}
}

func TestTeacherRequiredFields_OrderStable(t *testing.T) {
	want := []string{
		"full_name", "profile_picture_url", "headline", "bio", "archetype",
		"subjects", "grade_levels", "location", "years_experience", "resume_url",
	}
	fields := onboarding.TeacherRequiredFields(models.User{}, models.TeacherProfile{})
	if len(fields) != len(want) {
		t.Fatalf("got %d required fields, want %d", len(fields), len(want))
	}
	for i, f := range fields {
		if f.Name != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.Name, want[i])
		}
	}
}
