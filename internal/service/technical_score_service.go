package service

import (
	"fmt"

	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
)

// SkillEvidence reports which test backed a skill's technical sub-score.
type SkillEvidence struct {
	Skill          string  `json:"skill"`
	TestID         uint    `json:"test_id"`
	BestPercentage float64 `json:"best_percentage"`
	Weight         float64 `json:"weight"`
}

// TechnicalBreakdown is the fixed-schema explanation of a technical sub-score.
type TechnicalBreakdown struct {
	Evidence      []SkillEvidence `json:"evidence"`
	SkillsCovered int             `json:"skills_covered"`
	SkillsTotal   int             `json:"skills_total"`
	Neutral       bool            `json:"neutral"`
}

// TechnicalScoreService maps a candidate's completed test scores onto a job's
// relevant skills via the skill→test mapping table.
type TechnicalScoreService interface {
	ScoreForJob(userID uint, job *model.JobProfile) (float64, TechnicalBreakdown, error)
}

type technicalScoreService struct {
	mappingRepo repository.SkillTestMappingRepository
	scoreRepo   repository.ScoreRepository
	cfg         config.Scoring
}

func NewTechnicalScoreService(
	mappingRepo repository.SkillTestMappingRepository,
	scoreRepo repository.ScoreRepository,
	cfg *config.Config,
) TechnicalScoreService {
	return &technicalScoreService{mappingRepo: mappingRepo, scoreRepo: scoreRepo, cfg: cfg.Scoring}
}

// neutralTechnicalScore is returned when a candidate has no completed
// relevant test. A midpoint instead of zero avoids penalizing
// untested-but-otherwise-qualified candidates.
const neutralTechnicalScore = 0.5

func (s *technicalScoreService) ScoreForJob(userID uint, job *model.JobProfile) (float64, TechnicalBreakdown, error) {
	relevant := toSkillSet(append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...))
	breakdown := TechnicalBreakdown{SkillsTotal: len(relevant)}
	if len(relevant) == 0 {
		breakdown.Neutral = true
		return neutralTechnicalScore, breakdown, ErrNoRelevantTestData
	}

	normalized := make([]string, 0, len(relevant))
	for key := range relevant {
		normalized = append(normalized, key)
	}
	mappings, err := s.mappingRepo.FindBySkills(normalized)
	if err != nil {
		return 0, breakdown, fmt.Errorf("failed to load skill-test mappings: %w", err)
	}
	if len(mappings) == 0 {
		breakdown.Neutral = true
		return neutralTechnicalScore, breakdown, ErrNoRelevantTestData
	}

	testIDs := make([]uint, 0, len(mappings))
	for _, m := range mappings {
		testIDs = append(testIDs, m.TestID)
	}
	scores, err := s.scoreRepo.FindByUserAndTests(userID, testIDs)
	if err != nil {
		return 0, breakdown, fmt.Errorf("failed to load candidate scores: %w", err)
	}

	bestByTest := make(map[uint]float64, len(scores))
	for _, score := range scores {
		if current, ok := bestByTest[score.TestID]; !ok || score.Percentage > current {
			bestByTest[score.TestID] = score.Percentage
		}
	}

	var weightedSum, weightTotal float64
	covered := make(map[string]bool)
	for _, m := range mappings {
		pct, ok := bestByTest[m.TestID]
		if !ok {
			continue
		}
		weight := m.Weight
		if weight <= 0 {
			weight = 1
		}
		weightedSum += weight * pct
		weightTotal += weight
		covered[normalizeSkill(m.Skill)] = true
		breakdown.Evidence = append(breakdown.Evidence, SkillEvidence{
			Skill:          m.Skill,
			TestID:         m.TestID,
			BestPercentage: pct,
			Weight:         weight,
		})
	}
	breakdown.SkillsCovered = len(covered)

	if weightTotal == 0 {
		breakdown.Neutral = true
		return neutralTechnicalScore, breakdown, ErrNoRelevantTestData
	}

	meanPercentage := weightedSum / weightTotal
	return s.normalize(meanPercentage), breakdown, nil
}

// normalize maps a percentage onto [0,1] against the pass threshold: a
// just-passing performance lands at 0.5 and 100% approaches 1.0.
func (s *technicalScoreService) normalize(percentage float64) float64 {
	threshold := s.cfg.PassThreshold
	if threshold <= 0 || threshold >= 100 {
		threshold = 70
	}
	var normalized float64
	if percentage >= threshold {
		normalized = 0.5 + 0.5*(percentage-threshold)/(100-threshold)
	} else {
		normalized = 0.5 * (percentage / threshold)
	}
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}
