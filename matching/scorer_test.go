package matching_test

import (
	"testing"

	"github.com/chalkroute/teacher_match/matching"
)

func archetype(a matching.Archetype) *matching.Archetype { return &a }

func perfectTeacher() matching.TeacherTraits {
	return matching.TeacherTraits{
		Archetype:   archetype(matching.ArchetypeScholar),
		Subjects:    []string{"Math"},
		GradeLevels: []string{"9-12"},
		Location:    "Austin, TX",
	}
}

func mathJob() matching.JobTraits {
	return matching.JobTraits{
		Subject:    "math",
		GradeLevel: "9-12",
		Location:   "  austin, tx ",
	}
}

func TestScore_PerfectAlignment(t *testing.T) {
	_, b := matching.Score(perfectTeacher(), mathJob())

	if b.Subject != 100 {
		t.Errorf("subject sub-score = %d, want 100", b.Subject)
	}
	if b.GradeLevel != 100 {
		t.Errorf("grade-level sub-score = %d, want 100", b.GradeLevel)
	}
	if b.Location != 100 {
		t.Errorf("location sub-score = %d, want 100", b.Location)
	}
}

func TestScore_AggregateWeighting(t *testing.T) {
	// Scholar × 9-12 has an affinity of 95, so the weighted sum is
	// 95*30 + 100*30 + 100*20 + 100*20 = 9850, which rounds to 99.
	score, _ := matching.Score(perfectTeacher(), mathJob())
	if score != 99 {
		t.Errorf("aggregate = %d, want 99", score)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	teachers := []matching.TeacherTraits{
		{},
		perfectTeacher(),
		{Subjects: []string{"art"}, GradeLevels: []string{"K-2"}},
		{Archetype: archetype(matching.ArchetypeNurturer)},
	}
	jobs := []matching.JobTraits{
		{},
		mathJob(),
		{Subject: "underwater basket weaving", GradeLevel: "13-20", Location: "nowhere"},
	}
	for _, tt := range teachers {
		for _, j := range jobs {
			score, b := matching.Score(tt, j)
			if score < 0 || score > 100 {
				t.Errorf("aggregate %d out of [0,100] for %+v vs %+v", score, tt, j)
			}
			for name, sub := range map[string]int{
				"archetype": b.Archetype, "subject": b.Subject,
				"grade": b.GradeLevel, "location": b.Location,
			} {
				if sub < 0 || sub > 100 {
					t.Errorf("%s sub-score %d out of [0,100]", name, sub)
				}
			}
		}
	}
}

func TestScore_EmptySubjectsAlwaysZero(t *testing.T) {
	tt := perfectTeacher()
	tt.Subjects = nil
	for _, subject := range []string{"math", "english", ""} {
		j := mathJob()
		j.Subject = subject
		_, b := matching.Score(tt, j)
		if b.Subject != 0 {
			t.Errorf("subject sub-score = %d for job subject %q, want 0", b.Subject, subject)
		}
	}
}

func TestScore_SubjectFamilyPartialCredit(t *testing.T) {
	tt := perfectTeacher()
	tt.Subjects = []string{"Biology"}
	j := mathJob()
	j.Subject = "Chemistry"
	_, b := matching.Score(tt, j)
	if b.Subject != 60 {
		t.Errorf("same-family subject sub-score = %d, want 60", b.Subject)
	}

	j.Subject = "History"
	_, b = matching.Score(tt, j)
	if b.Subject != 0 {
		t.Errorf("cross-family subject sub-score = %d, want 0", b.Subject)
	}
}

func TestScore_NilArchetypeIsNeutral(t *testing.T) {
	tt := perfectTeacher()
	tt.Archetype = nil
	_, b := matching.Score(tt, mathJob())
	if b.Archetype != 50 {
		t.Errorf("nil-archetype sub-score = %d, want neutral 50", b.Archetype)
	}
}

func TestScore_GradeBandNoAdjacencyCredit(t *testing.T) {
	tt := perfectTeacher()
	tt.GradeLevels = []string{"6-8"}
	_, b := matching.Score(tt, mathJob()) // job is 9-12
	if b.GradeLevel != 0 {
		t.Errorf("adjacent-band grade sub-score = %d, want 0", b.GradeLevel)
	}
}

func TestScore_LocationRegionPartialCredit(t *testing.T) {
	tt := perfectTeacher()
	tt.Location = "Round Rock, TX"
	tt.Region = "Travis County"
	j := mathJob()
	j.Region = "travis county"
	_, b := matching.Score(tt, j)
	if b.Location != 50 {
		t.Errorf("same-region location sub-score = %d, want 50", b.Location)
	}

	tt.Region = ""
	j.Region = ""
	_, b = matching.Score(tt, j)
	if b.Location != 0 {
		t.Errorf("no-signal location sub-score = %d, want 0", b.Location)
	}
}

func TestScore_Deterministic(t *testing.T) {
	first, fb := matching.Score(perfectTeacher(), mathJob())
	for i := 0; i < 10; i++ {
		again, ab := matching.Score(perfectTeacher(), mathJob())
		if again != first || ab != fb {
			t.Fatalf("re-scoring unchanged inputs gave %d/%+v, first run gave %d/%+v",
				again, ab, first, fb)
		}
	}
}

func TestReason_Deterministic(t *testing.T) {
	_, b := matching.Score(perfectTeacher(), mathJob())
	first := matching.Reason(b)
	if first == "" {
		t.Fatal("Reason returned an empty string")
	}
	if again := matching.Reason(b); again != first {
		t.Errorf("Reason not deterministic: %q then %q", first, again)
	}
}

func TestParseArchetype(t *testing.T) {
	for _, a := range matching.Archetypes {
		got, err := matching.ParseArchetype(string(a))
		if err != nil {
			t.Errorf("ParseArchetype(%q) returned unexpected error: %v", a, err)
		}
		if got != a {
			t.Errorf("ParseArchetype(%q) = %q", a, got)
		}
	}
	if _, err := matching.ParseArchetype("rockstar"); err == nil {
		t.Error("ParseArchetype(\"rockstar\") expected error, got nil")
	}
}
