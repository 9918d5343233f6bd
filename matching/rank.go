package matching

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ScoredJob is one entry of a teacher's ranked job list.
type ScoredJob struct {
	JobID    uuid.UUID
	Score    int
	PostedAt time.Time
}

// ScoredCandidate is one entry of a job's ranked candidate list.
type ScoredCandidate struct {
	TeacherID uuid.UUID
	Score     int
	UpdatedAt time.Time
}

// RankJobs orders jobs by score descending, breaking ties by recency
// (posted_at descending). The sort is stable, so equal entries keep their
// input order and re-ranking unchanged input reproduces the same order.
func RankJobs(jobs []ScoredJob) {
	sort.SliceStable(jobs, func(i, k int) bool {
		if jobs[i].Score != jobs[k].Score {
			return jobs[i].Score > jobs[k].Score
		}
		return jobs[i].PostedAt.After(jobs[k].PostedAt)
	})
}

// RankCandidates orders candidates by score descending, breaking ties by
// most recently updated profile.
func RankCandidates(candidates []ScoredCandidate) {
	sort.SliceStable(candidates, func(i, k int) bool {
		if candidates[i].Score != candidates[k].Score {
			return candidates[i].Score > candidates[k].Score
		}
		return candidates[i].UpdatedAt.After(candidates[k].UpdatedAt)
	})
}
