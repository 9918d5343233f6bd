package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/matching"
	"github.com/chalkroute/teacher_match/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const matchCacheTTL = 10 * time.Minute

// RankedMatch is one entry of a teacher's ranked job list, annotated with
// the UI band label.
type RankedMatch struct {
	models.Match
	Band string `json:"match_band"`
}

// RankedCandidate is one entry of a job's ranked candidate list. The teacher
// profile is lifted out of the match row so it survives serialization.
type RankedCandidate struct {
	models.Match
	Band    string                `json:"match_band"`
	Teacher models.TeacherProfile `json:"teacher"`
}

func teacherTraits(p models.TeacherProfile) matching.TeacherTraits {
	traits := matching.TeacherTraits{
		Subjects:    p.Subjects,
		GradeLevels: p.GradeLevels,
	}
	if p.Archetype != nil {
		if a, err := matching.ParseArchetype(*p.Archetype); err == nil {
			traits.Archetype = &a
		}
	}
	if p.Location != nil {
		traits.Location = *p.Location
		traits.Region = ResolveRegion(*p.Location)
	}
	return traits
}

func jobTraits(j models.Job) matching.JobTraits {
	return matching.JobTraits{
		Subject:    j.Subject,
		GradeLevel: j.GradeLevel,
		Location:   j.Location,
		Region:     ResolveRegion(j.Location),
	}
}

// scoreAndUpsert computes the score for one (teacher, job) pair and upserts
// the Match row keyed on the unique pair, so concurrent recomputation never
// duplicates rows.
func scoreAndUpsert(tx *gorm.DB, p models.TeacherProfile, j models.Job) (models.Match, error) {
	if p.UserID == uuid.Nil {
		return models.Match{}, errors.New("teacher profile is missing its user id")
	}
	if j.ID == uuid.Nil {
		return models.Match{}, errors.New("job is missing its id")
	}

	score, breakdown := matching.Score(teacherTraits(p), jobTraits(j))
	reason := matching.Reason(breakdown)

	match := models.Match{
		TeacherID:   p.UserID,
		JobID:       j.ID,
		MatchScore:  score,
		MatchReason: &reason,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "teacher_id"}, {Name: "job_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"match_score":  score,
			"match_reason": reason,
			"updated_at":   time.Now(),
		}),
	}).Create(&match).Error
	if err != nil {
		return models.Match{}, err
	}
	return match, nil
}

// RefreshMatchesForTeacher recomputes this teacher's score against every open
// job. A job that fails to score is skipped and logged, never aborts the
// batch; a missing teacher profile is fatal for the attempt.
func RefreshMatchesForTeacher(teacherID uuid.UUID) error {
	var profile models.TeacherProfile
	if err := database.DB.Preload("User").First(&profile, "user_id = ?", teacherID).Error; err != nil {
		return fmt.Errorf("load teacher profile %s: %w", teacherID, err)
	}

	var jobs []models.Job
	if err := database.DB.Where("status = ?", models.JobStatusOpen).Find(&jobs).Error; err != nil {
		return fmt.Errorf("load open jobs: %w", err)
	}

	for _, job := range jobs {
		if _, err := scoreAndUpsert(database.DB, profile, job); err != nil {
			log.Printf("🔥 Skipping job %s while refreshing matches for teacher %s: %v", job.ID, teacherID, err)
		}
	}

	InvalidateMatchCache(teacherID)
	return nil
}

// RefreshMatchesForJob recomputes every onboarded teacher's score against one
// job, typically after the job was created or edited.
func RefreshMatchesForJob(jobID uuid.UUID) error {
	var job models.Job
	if err := database.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return fmt.Errorf("load job %s: %w", jobID, err)
	}

	var profiles []models.TeacherProfile
	if err := database.DB.Where("onboarding_complete = ?", true).Find(&profiles).Error; err != nil {
		return fmt.Errorf("load teacher profiles: %w", err)
	}

	for _, profile := range profiles {
		if _, err := scoreAndUpsert(database.DB, profile, job); err != nil {
			log.Printf("🔥 Skipping teacher %s while refreshing matches for job %s: %v", profile.UserID, jobID, err)
			continue
		}
		InvalidateMatchCache(profile.UserID)
	}
	return nil
}

// EnsureMatch lazily creates (or refreshes) the single Match row for one
// pair, used when a teacher favorites a job that has no precomputed record.
func EnsureMatch(teacherID, jobID uuid.UUID) (models.Match, error) {
	var profile models.TeacherProfile
	if err := database.DB.First(&profile, "user_id = ?", teacherID).Error; err != nil {
		return models.Match{}, fmt.Errorf("load teacher profile %s: %w", teacherID, err)
	}
	var job models.Job
	if err := database.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return models.Match{}, fmt.Errorf("load job %s: %w", jobID, err)
	}

	if _, err := scoreAndUpsert(database.DB, profile, job); err != nil {
		return models.Match{}, err
	}

	var match models.Match
	if err := database.DB.First(&match, "teacher_id = ? AND job_id = ?", teacherID, jobID).Error; err != nil {
		return models.Match{}, err
	}
	InvalidateMatchCache(teacherID)
	return match, nil
}

// RankedMatchesForTeacher returns the teacher's visible matches against open
// jobs, ranked score-descending with recency tie-breaks, banded for the UI.
// Results are cached per teacher until the next recomputation.
func RankedMatchesForTeacher(teacherID uuid.UUID, limit int) ([]RankedMatch, error) {
	if cached, ok := cachedMatches(teacherID); ok {
		return truncateMatches(cached, limit), nil
	}

	matches, err := loadVisibleMatches(teacherID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		// Lazy creation: first time this teacher's list is computed.
		if err := RefreshMatchesForTeacher(teacherID); err != nil {
			return nil, err
		}
		if matches, err = loadVisibleMatches(teacherID); err != nil {
			return nil, err
		}
	}

	scored := make([]matching.ScoredJob, 0, len(matches))
	byJob := make(map[uuid.UUID]models.Match, len(matches))
	for _, m := range matches {
		if m.Job.ID == uuid.Nil {
			// Job row vanished between queries; omit rather than surface an error.
			log.Printf("Omitting match %s with missing job from ranked results", m.ID)
			continue
		}
		scored = append(scored, matching.ScoredJob{
			JobID:    m.JobID,
			Score:    m.MatchScore,
			PostedAt: m.Job.PostedAt,
		})
		byJob[m.JobID] = m
	}
	matching.RankJobs(scored)

	ranked := make([]RankedMatch, 0, len(scored))
	for _, s := range scored {
		m := byJob[s.JobID]
		ranked = append(ranked, RankedMatch{Match: m, Band: matching.Band(m.MatchScore)})
	}

	cacheMatches(teacherID, ranked)
	return truncateMatches(ranked, limit), nil
}

// RankedCandidatesForJob returns the scored teachers for one job, ranked for
// the school's review queue.
func RankedCandidatesForJob(jobID uuid.UUID) ([]RankedCandidate, error) {
	var matches []models.Match
	err := database.DB.
		Preload("Teacher").Preload("Teacher.User").
		Where("job_id = ?", jobID).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		if err := RefreshMatchesForJob(jobID); err != nil {
			return nil, err
		}
		err = database.DB.
			Preload("Teacher").Preload("Teacher.User").
			Where("job_id = ?", jobID).
			Find(&matches).Error
		if err != nil {
			return nil, err
		}
	}

	scored := make([]matching.ScoredCandidate, 0, len(matches))
	byTeacher := make(map[uuid.UUID]models.Match, len(matches))
	for _, m := range matches {
		scored = append(scored, matching.ScoredCandidate{
			TeacherID: m.TeacherID,
			Score:     m.MatchScore,
			UpdatedAt: m.Teacher.UpdatedAt,
		})
		byTeacher[m.TeacherID] = m
	}
	matching.RankCandidates(scored)

	ranked := make([]RankedCandidate, 0, len(scored))
	for _, s := range scored {
		m := byTeacher[s.TeacherID]
		ranked = append(ranked, RankedCandidate{Match: m, Band: matching.Band(m.MatchScore), Teacher: m.Teacher})
	}
	return ranked, nil
}

func loadVisibleMatches(teacherID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := database.DB.
		Preload("Job").Preload("Job.School").
		Joins("JOIN jobs ON jobs.id = matches.job_id").
		Where("matches.teacher_id = ? AND matches.is_hidden = ? AND jobs.status = ?",
			teacherID, false, models.JobStatusOpen).
		Find(&matches).Error
	return matches, err
}

func truncateMatches(matches []RankedMatch, limit int) []RankedMatch {
	if limit > 0 && len(matches) > limit {
		return matches[:limit]
	}
	return matches
}

func matchCacheKey(teacherID uuid.UUID) string {
	return "matches:teacher:" + teacherID.String()
}

func cachedMatches(teacherID uuid.UUID) ([]RankedMatch, bool) {
	if database.Redis == nil {
		return nil, false
	}
	raw, err := database.Redis.Get(context.Background(), matchCacheKey(teacherID)).Bytes()
	if err != nil {
		return nil, false
	}
	var ranked []RankedMatch
	if err := json.Unmarshal(raw, &ranked); err != nil {
		return nil, false
	}
	return ranked, true
}

func cacheMatches(teacherID uuid.UUID, ranked []RankedMatch) {
	if database.Redis == nil {
		return
	}
	raw, err := json.Marshal(ranked)
	if err != nil {
		return
	}
	if err := database.Redis.Set(context.Background(), matchCacheKey(teacherID), raw, matchCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache ranked matches for teacher %s: %v", teacherID, err)
	}
}

// InvalidateMatchCache drops the cached ranked list after any recomputation
// or visibility change.
func InvalidateMatchCache(teacherID uuid.UUID) {
	if database.Redis == nil {
		return
	}
	if err := database.Redis.Del(context.Background(), matchCacheKey(teacherID)).Err(); err != nil {
		log.Printf("Failed to invalidate match cache for teacher %s: %v", teacherID, err)
	}
}
