package matching

import "strings"

// GradeBand is one of the four discrete K-12 grade-level bands. Bands are
// categorical: there is no partial credit for adjacency.
type GradeBand string

const (
	BandK2  GradeBand = "K-2"
	Band35  GradeBand = "3-5"
	Band68  GradeBand = "6-8"
	Band912 GradeBand = "9-12"
)

// gradeBandAliases maps common spellings onto the canonical bands.
var gradeBandAliases = map[string]GradeBand{
	"k-2":        BandK2,
	"k2":         BandK2,
	"elementary": Band35,
	"3-5":        Band35,
	"6-8":        Band68,
	"middle":     Band68,
	"9-12":       Band912,
	"high":       Band912,
}

// NormalizeGradeBand maps a raw grade-level string onto a canonical band.
// The second return value is false when the input matches no known band.
func NormalizeGradeBand(s string) (GradeBand, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	band, ok := gradeBandAliases[key]
	return band, ok
}

// gradeScore is 100 when the job's grade band is among the teacher's bands,
// else 0. An empty teacher set scores 0, never errors.
func gradeScore(teacherGradeLevels []string, jobGradeLevel string) int {
	jobBand, ok := NormalizeGradeBand(jobGradeLevel)
	if !ok {
		return 0
	}
	for _, g := range teacherGradeLevels {
		if band, ok := NormalizeGradeBand(g); ok && band == jobBand {
			return 100
		}
	}
	return 0
}
