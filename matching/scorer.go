// Package matching implements the teacher–job compatibility scorer: a pure,
// deterministic function from one teacher's attributes and one job posting to
// an aggregate score in [0, 100] with a four-way breakdown. Persisting the
// result is the caller's responsibility.
package matching

import (
	"fmt"
	"strings"
)

// Aggregate weights, in percent. Any change here is a versioned behavior
// change, not a silent tweak.
const (
	weightArchetype  = 30
	weightSubject    = 30
	weightGradeLevel = 20
	weightLocation   = 20
)

// regionMatchScore is the partial credit when the location strings differ
// but both sides resolve to the same region.
const regionMatchScore = 50

// TeacherTraits is the scoring-relevant subset of a teacher profile. Region
// is an optional geographic signal resolved by the caller (e.g. from the
// geocode cache); leave it empty when none exists.
type TeacherTraits struct {
	Archetype   *Archetype
	Subjects    []string
	GradeLevels []string
	Location    string
	Region      string
}

// JobTraits is the scoring-relevant subset of a job posting.
type JobTraits struct {
	Subject    string
	GradeLevel string
	Location   string
	Region     string
}

// Breakdown carries the four sub-scores, each independently in [0, 100].
type Breakdown struct {
	Archetype  int `json:"archetype"`
	Subject    int `json:"subject"`
	GradeLevel int `json:"grade_level"`
	Location   int `json:"location"`
}

// Score computes the aggregate compatibility score and its breakdown. It has
// no side effects and never fails: missing optional data degrades to the
// documented default sub-scores.
func Score(t TeacherTraits, j JobTraits) (int, Breakdown) {
	b := Breakdown{
		Archetype:  archetypeScore(t.Archetype, j.GradeLevel),
		Subject:    subjectScore(t.Subjects, j.Subject),
		GradeLevel: gradeScore(t.GradeLevels, j.GradeLevel),
		Location:   locationScore(t.Location, t.Region, j.Location, j.Region),
	}

	weighted := b.Archetype*weightArchetype +
		b.Subject*weightSubject +
		b.GradeLevel*weightGradeLevel +
		b.Location*weightLocation

	// Round to nearest integer, then clamp.
	aggregate := (weighted + 50) / 100
	if aggregate < 0 {
		aggregate = 0
	}
	if aggregate > 100 {
		aggregate = 100
	}
	return aggregate, b
}

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// locationScore is 100 on a case-insensitive trimmed string match, partial
// when both sides resolve to the same region, else 0 when no geographic
// signal exists.
func locationScore(teacherLoc, teacherRegion, jobLoc, jobRegion string) int {
	tl, jl := normalizeLocation(teacherLoc), normalizeLocation(jobLoc)
	if tl != "" && tl == jl {
		return 100
	}
	tr, jr := normalizeLocation(teacherRegion), normalizeLocation(jobRegion)
	if tr != "" && tr == jr {
		return regionMatchScore
	}
	return 0
}

// Reason renders a deterministic human-readable explanation of a breakdown,
// persisted as match_reason.
func Reason(b Breakdown) string {
	part := func(name string, score int) string {
		switch {
		case score >= 80:
			return "strong " + name + " fit"
		case score >= 50:
			return "partial " + name + " fit"
		default:
			return "no " + name + " fit"
		}
	}
	return fmt.Sprintf("%s, %s, %s, %s",
		part("archetype", b.Archetype),
		part("subject", b.Subject),
		part("grade-level", b.GradeLevel),
		part("location", b.Location))
}
