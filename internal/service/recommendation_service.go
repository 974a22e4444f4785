package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

// RecommendationService combines every sub-score into ranked, explained job
// recommendations per candidate.
type RecommendationService interface {
	// Recommend computes one (candidate, job) recommendation with the given
	// weights. Pure given its inputs apart from score lookups.
	Recommend(candidate *model.CandidateProfile, job *model.JobProfile, weights model.RecommendationWeights) (*model.Recommendation, error)
	// RecommendForCandidate recomputes, persists and returns the ranked
	// recommendations of one candidate. Entries under the quality threshold
	// are discarded entirely, not ranked last.
	RecommendForCandidate(ctx context.Context, candidateID uint, limit int) ([]model.Recommendation, error)
	// StoredForCandidate reads back the recommendations persisted by the
	// last compute or rebuild, ranked by overall, without recomputing.
	StoredForCandidate(candidateID uint, limit int) ([]model.Recommendation, error)
	// RebuildAll recomputes recommendations for every (candidate, job) pair.
	// Pairs are independent, so the run parallelizes per candidate; the
	// keyed upsert makes repeated runs converge.
	RebuildAll(ctx context.Context) (int, error)
}

type recommendationService struct {
	candidateRepo  repository.CandidateRepository
	jobRepo        repository.JobRepository
	scoreRepo      repository.ScoreRepository
	weightsRepo    repository.RecommendationWeightsRepository
	recommendRepo  repository.RecommendationRepository
	skillMatcher   SkillMatchService
	technicalScore TechnicalScoreService
	fit            FitService
	cluster        ClusterService
	cfg            config.Recommendation
}

func NewRecommendationService(
	candidateRepo repository.CandidateRepository,
	jobRepo repository.JobRepository,
	scoreRepo repository.ScoreRepository,
	weightsRepo repository.RecommendationWeightsRepository,
	recommendRepo repository.RecommendationRepository,
	skillMatcher SkillMatchService,
	technicalScore TechnicalScoreService,
	fit FitService,
	cluster ClusterService,
	cfg *config.Config,
) RecommendationService {
	return &recommendationService{
		candidateRepo:  candidateRepo,
		jobRepo:        jobRepo,
		scoreRepo:      scoreRepo,
		weightsRepo:    weightsRepo,
		recommendRepo:  recommendRepo,
		skillMatcher:   skillMatcher,
		technicalScore: technicalScore,
		fit:            fit,
		cluster:        cluster,
		cfg:            cfg.Recommendation,
	}
}

func (s *recommendationService) Recommend(candidate *model.CandidateProfile, job *model.JobProfile, weights model.RecommendationWeights) (*model.Recommendation, error) {
	match := s.skillMatcher.Match(candidate.Skills, job.RequiredSkills, job.PreferredSkills)

	technical, technicalBreakdown, err := s.technicalScore.ScoreForJob(candidate.UserID, job)
	if err != nil && !errors.Is(err, ErrNoRelevantTestData) {
		return nil, fmt.Errorf("technical sub-score failed: %w", err)
	}

	candidateScores, err := s.scoreRepo.FindAllByUser(candidate.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate scores: %w", err)
	}

	sub := model.SubScores{
		SkillMatch:    match.Score,
		TechnicalTest: technical,
		Experience:    s.fit.ExperienceScore(candidate, job),
		Salary:        s.fit.SalaryScore(candidate, job),
		Location:      s.fit.LocationScore(candidate, job),
		ClusterFit:    s.cluster.FitScore(candidate, candidateScores, job),
		Employability: s.fit.EmployabilityScore(candidate, candidateScores),
	}

	// Weights apply as-is; they are deliberately not renormalized to sum
	// to 1, so historical scores stay comparable when one weight is tuned.
	overall := weights.SkillMatch*sub.SkillMatch +
		weights.TechnicalTest*sub.TechnicalTest +
		weights.Experience*sub.Experience +
		weights.Salary*sub.Salary +
		weights.Location*sub.Location +
		weights.ClusterFit*sub.ClusterFit +
		weights.Employability*sub.Employability

	return &model.Recommendation{
		CandidateID:   candidate.ID,
		JobID:         job.ID,
		Job:           *job,
		Overall:       overall,
		SubScores:     datatypes.NewJSONType(sub),
		MatchedSkills: datatypes.NewJSONSlice(match.Matched),
		MissingSkills: datatypes.NewJSONSlice(match.Missing),
		Explanations:  datatypes.NewJSONSlice(buildExplanations(sub, match, technicalBreakdown)),
		ComputedAt:    time.Now(),
	}, nil
}

func (s *recommendationService) RecommendForCandidate(ctx context.Context, candidateID uint, limit int) ([]model.Recommendation, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, fmt.Errorf("candidate not found with ID %d: %w", candidateID, err)
	}
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	weights, err := s.weightsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendation weights: %w", err)
	}

	recommendations, err := s.computeForCandidate(ctx, candidate, jobs, weights)
	if err != nil {
		return nil, err
	}

	if err := s.recommendRepo.Upsert(toPointers(recommendations)); err != nil {
		return nil, fmt.Errorf("failed to store recommendations: %w", err)
	}

	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > 0 && len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}

func (s *recommendationService) StoredForCandidate(candidateID uint, limit int) ([]model.Recommendation, error) {
	if _, err := s.candidateRepo.FindByID(candidateID); err != nil {
		return nil, fmt.Errorf("candidate not found with ID %d: %w", candidateID, err)
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	recommendations, err := s.recommendRepo.FindByCandidate(candidateID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored recommendations: %w", err)
	}
	return recommendations, nil
}

func (s *recommendationService) RebuildAll(ctx context.Context) (int, error) {
	candidates, err := s.candidateRepo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load candidates: %w", err)
	}
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load jobs: %w", err)
	}
	weights, err := s.weightsRepo.Get()
	if err != nil {
		return 0, fmt.Errorf("failed to load recommendation weights: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	concurrency := s.cfg.BatchConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	g.SetLimit(concurrency)

	results := make(chan int, len(candidates))
	for i := range candidates {
		candidate := candidates[i]
		g.Go(func() error {
			recommendations, err := s.computeForCandidate(ctx, &candidate, jobs, weights)
			if err != nil {
				return err
			}
			if err := s.recommendRepo.Upsert(toPointers(recommendations)); err != nil {
				return fmt.Errorf("failed to store recommendations for candidate %d: %w", candidate.ID, err)
			}
			results <- len(recommendations)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	close(results)

	total := 0
	for n := range results {
		total += n
	}
	log.Info().Int("candidates", len(candidates)).Int("jobs", len(jobs)).Int("stored", total).Msg("recommendation rebuild finished")
	return total, nil
}

// computeForCandidate scores all jobs for one candidate, applies the hard
// quality cut and ranks the survivors.
func (s *recommendationService) computeForCandidate(ctx context.Context, candidate *model.CandidateProfile, jobs []model.JobProfile, weights model.RecommendationWeights) ([]model.Recommendation, error) {
	minOverall := weights.MinOverall
	if minOverall <= 0 {
		minOverall = s.cfg.MinOverall
	}

	recommendations := make([]model.Recommendation, 0, len(jobs))
	for i := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		job := jobs[i]
		rec, err := s.Recommend(candidate, &job, weights)
		if err != nil {
			return nil, fmt.Errorf("recommendation failed for candidate %d, job %d: %w", candidate.ID, job.ID, err)
		}
		if rec.Overall < minOverall {
			continue
		}
		recommendations = append(recommendations, *rec)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Overall != recommendations[j].Overall {
			return recommendations[i].Overall > recommendations[j].Overall
		}
		iMatch := recommendations[i].SubScores.Data().SkillMatch
		jMatch := recommendations[j].SubScores.Data().SkillMatch
		if iMatch != jMatch {
			return iMatch > jMatch
		}
		return recommendations[i].Job.PostedAt.After(recommendations[j].Job.PostedAt)
	})
	return recommendations, nil
}

func toPointers(recommendations []model.Recommendation) []*model.Recommendation {
	out := make([]*model.Recommendation, len(recommendations))
	for i := range recommendations {
		out[i] = &recommendations[i]
	}
	return out
}
