// Package onboarding is the single source of truth for profile completion
// and the gating decision that unlocks job-matching features. Route guards
// and handlers must consume this package instead of re-deriving their own
// "is onboarding complete" condition.
package onboarding

import (
	"github.com/chalkroute/teacher_match/models"
)

// Field is one required profile field and whether it currently holds a value.
type Field struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// Completion computes the completion percentage for a fixed ordered list of
// required fields: round(present / total × 100). An empty list is 0%.
func Completion(fields []Field) int {
	if len(fields) == 0 {
		return 0
	}
	present := 0
	for _, f := range fields {
		if f.Present {
			present++
		}
	}
	return (present*100 + len(fields)/2) / len(fields)
}

// IsComplete reports whether a completion percentage unlocks matching.
func IsComplete(pct int) bool { return pct == 100 }

func stringPresent(s *string) bool { return s != nil && *s != "" }

func listPresent(l []string) bool { return len(l) > 0 }

// TeacherRequiredFields is the fixed ordered list of fields a teacher must
// fill in before matching unlocks. The order is part of the API response
// shape and must stay stable.
func TeacherRequiredFields(u models.User, p models.TeacherProfile) []Field {
	return []Field{
		{Name: "full_name", Present: u.FullName != ""},
		{Name: "profile_picture_url", Present: stringPresent(u.ProfilePictureURL)},
		{Name: "headline", Present: stringPresent(p.Headline)},
		{Name: "bio", Present: stringPresent(p.Bio)},
		{Name: "archetype", Present: stringPresent(p.Archetype)},
		{Name: "subjects", Present: listPresent(p.Subjects)},
		{Name: "grade_levels", Present: listPresent(p.GradeLevels)},
		{Name: "location", Present: stringPresent(p.Location)},
		{Name: "years_experience", Present: stringPresent(p.YearsExperience)},
		{Name: "resume_url", Present: stringPresent(p.ResumeURL)},
	}
}

// TeacherCompletion is the completion percentage for a teacher profile.
func TeacherCompletion(u models.User, p models.TeacherProfile) int {
	return Completion(TeacherRequiredFields(u, p))
}

// SchoolRequiredFields is the fixed ordered list of fields a school must fill
// in before it may post jobs.
func SchoolRequiredFields(u models.User, p models.SchoolProfile) []Field {
	return []Field{
		{Name: "full_name", Present: u.FullName != ""},
		{Name: "school_name", Present: p.SchoolName != ""},
		{Name: "district", Present: stringPresent(p.District)},
		{Name: "location", Present: stringPresent(p.Location)},
		{Name: "about", Present: stringPresent(p.About)},
	}
}

// SchoolCompletion is the completion percentage for a school profile.
func SchoolCompletion(u models.User, p models.SchoolProfile) int {
	return Completion(SchoolRequiredFields(u, p))
}
