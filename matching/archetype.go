package matching

import "fmt"

// Archetype is one of the six fixed teaching styles assigned by the
// onboarding quiz.
type Archetype string

const (
	ArchetypeGuide     Archetype = "guide"
	ArchetypeLeader    Archetype = "leader"
	ArchetypeInnovator Archetype = "innovator"
	ArchetypeNurturer  Archetype = "nurturer"
	ArchetypeScholar   Archetype = "scholar"
	ArchetypeCoach     Archetype = "coach"
)

// Archetypes lists every archetype in its canonical order. Quiz tie-breaks
// and any other ordering-sensitive consumer must iterate this slice, not the
// affinity map.
var Archetypes = []Archetype{
	ArchetypeGuide,
	ArchetypeLeader,
	ArchetypeInnovator,
	ArchetypeNurturer,
	ArchetypeScholar,
	ArchetypeCoach,
}

// ParseArchetype converts a raw string to an Archetype, returning an error
// for unknown values.
func ParseArchetype(s string) (Archetype, error) {
	a := Archetype(s)
	for _, known := range Archetypes {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown archetype %q", s)
}

// neutralArchetypeScore is used when the teacher has not completed the quiz,
// or when the job's grade band carries no affinity signal. A midpoint keeps
// an unset archetype from silently scoring as a perfect or zero match.
const neutralArchetypeScore = 50

// archetypeAffinity maps each archetype to its affinity for the school
// environment implied by a job's grade band. The values are product-approved
// defaults; changing any of them is a versioned behavior change.
var archetypeAffinity = map[Archetype]map[GradeBand]int{
	ArchetypeGuide:     {BandK2: 70, Band35: 80, Band68: 75, Band912: 70},
	ArchetypeLeader:    {BandK2: 55, Band35: 65, Band68: 80, Band912: 90},
	ArchetypeInnovator: {BandK2: 60, Band35: 70, Band68: 85, Band912: 80},
	ArchetypeNurturer:  {BandK2: 95, Band35: 85, Band68: 65, Band912: 50},
	ArchetypeScholar:   {BandK2: 45, Band35: 60, Band68: 80, Band912: 95},
	ArchetypeCoach:     {BandK2: 65, Band35: 75, Band68: 90, Band912: 85},
}

// archetypeScore returns the affinity of the teacher's archetype for the
// job's grade band. A nil archetype and an unrecognizable band both degrade
// to the neutral midpoint rather than erroring.
func archetypeScore(archetype *Archetype, jobGradeLevel string) int {
	if archetype == nil {
		return neutralArchetypeScore
	}
	band, ok := NormalizeGradeBand(jobGradeLevel)
	if !ok {
		return neutralArchetypeScore
	}
	affinity, ok := archetypeAffinity[*archetype]
	if !ok {
		return neutralArchetypeScore
	}
	return affinity[band]
}
