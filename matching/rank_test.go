package matching_test

import (
	"testing"
	"time"

	"github.com/chalkroute/teacher_match/matching"
	"github.com/google/uuid"
)

func TestRankJobs_ScoreDescending(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	jobs := []matching.ScoredJob{
		{JobID: uuid.New(), Score: 40, PostedAt: base},
		{JobID: uuid.New(), Score: 90, PostedAt: base},
		{JobID: uuid.New(), Score: 65, PostedAt: base},
	}
	matching.RankJobs(jobs)

	for i := 1; i < len(jobs); i++ {
		if jobs[i].Score > jobs[i-1].Score {
			t.Errorf("position %d score %d ranked after %d", i, jobs[i].Score, jobs[i-1].Score)
		}
	}
}

func TestRankJobs_TieBrokenByRecency(t *testing.T) {
	older := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 0, 14)
	oldID, newID := uuid.New(), uuid.New()

	jobs := []matching.ScoredJob{
		{JobID: oldID, Score: 70, PostedAt: older},
		{JobID: newID, Score: 70, PostedAt: newer},
	}
	matching.RankJobs(jobs)

	if jobs[0].JobID != newID {
		t.Errorf("tie not broken by recency: got %s first, want %s", jobs[0].JobID, newID)
	}
}

func TestRankJobs_Stable(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	build := func() []matching.ScoredJob {
		// Fixed IDs so both runs rank identical input.
		ids := []string{
			"c1a6d5ee-0000-4000-8000-000000000001",
			"c1a6d5ee-0000-4000-8000-000000000002",
			"c1a6d5ee-0000-4000-8000-000000000003",
			"c1a6d5ee-0000-4000-8000-000000000004",
		}
		return []matching.ScoredJob{
			{JobID: uuid.MustParse(ids[0]), Score: 55, PostedAt: base},
			{JobID: uuid.MustParse(ids[1]), Score: 80, PostedAt: base},
			{JobID: uuid.MustParse(ids[2]), Score: 55, PostedAt: base},
			{JobID: uuid.MustParse(ids[3]), Score: 80, PostedAt: base.AddDate(0, 0, 1)},
		}
	}

	first := build()
	matching.RankJobs(first)
	second := build()
	matching.RankJobs(second)

	for i := range first {
		if first[i].JobID != second[i].JobID {
			t.Fatalf("ranking not reproducible at position %d: %s vs %s",
				i, first[i].JobID, second[i].JobID)
		}
	}
	// Equal score and equal recency keep input order.
	if first[2].Score != 55 || first[3].Score != 55 {
		t.Fatalf("unexpected order after ranking: %+v", first)
	}
	if first[2].JobID.String() != "c1a6d5ee-0000-4000-8000-000000000001" {
		t.Errorf("stable sort did not preserve input order for equal keys")
	}
}

func TestRankCandidates_TieBrokenByProfileRecency(t *testing.T) {
	older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 1, 0)
	staleID, freshID := uuid.New(), uuid.New()

	candidates := []matching.ScoredCandidate{
		{TeacherID: staleID, Score: 82, UpdatedAt: older},
		{TeacherID: freshID, Score: 82, UpdatedAt: newer},
		{TeacherID: uuid.New(), Score: 91, UpdatedAt: older},
	}
	matching.RankCandidates(candidates)

	if candidates[0].Score != 91 {
		t.Errorf("highest score not first: %+v", candidates[0])
	}
	if candidates[1].TeacherID != freshID {
		t.Errorf("tie not broken by profile recency: got %s", candidates[1].TeacherID)
	}
}
