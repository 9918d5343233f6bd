package matching

import "strings"

// familyMatchScore is the partial credit for a job subject that belongs to
// the same subject family as one of the teacher's subjects without being an
// exact match.
const familyMatchScore = 60

// subjectFamilies groups related subjects; membership in the same family
// earns partial credit. Keys and members are stored normalized (lower-case,
// trimmed).
var subjectFamilies = map[string][]string{
	"stem": {
		"math", "mathematics", "algebra", "geometry", "calculus",
		"science", "biology", "chemistry", "physics", "earth science",
		"computer science", "engineering", "technology",
	},
	"humanities": {
		"english", "ela", "english language arts", "reading", "writing",
		"history", "social studies", "geography", "civics", "economics",
	},
	"arts": {
		"art", "visual arts", "music", "band", "choir", "drama", "theater",
	},
	"languages": {
		"spanish", "french", "german", "mandarin", "latin", "esl",
		"world languages",
	},
	"wellness": {
		"physical education", "pe", "health", "counseling",
	},
	"special": {
		"special education", "sped", "gifted education", "intervention",
	},
}

// subjectFamily is the reverse index, built once at package init.
var subjectFamily = func() map[string]string {
	idx := make(map[string]string)
	for family, members := range subjectFamilies {
		for _, m := range members {
			idx[m] = family
		}
	}
	return idx
}()

func normalizeSubject(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// subjectScore is 100 on exact case-insensitive membership, familyMatchScore
// when the job subject shares a family with any teacher subject, else 0.
// An empty teacher set always scores 0.
func subjectScore(teacherSubjects []string, jobSubject string) int {
	if len(teacherSubjects) == 0 {
		return 0
	}
	job := normalizeSubject(jobSubject)
	for _, s := range teacherSubjects {
		if normalizeSubject(s) == job {
			return 100
		}
	}
	jobFamily, ok := subjectFamily[job]
	if !ok {
		return 0
	}
	for _, s := range teacherSubjects {
		if subjectFamily[normalizeSubject(s)] == jobFamily {
			return familyMatchScore
		}
	}
	return 0
}
