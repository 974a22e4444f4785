package service

import (
	"strings"

	"github.com/lshigami/Caracal/internal/model"
)

// FitService holds the independent [0,1] sub-scorers for location, salary,
// seniority and employability. All methods are pure.
type FitService interface {
	LocationScore(candidate *model.CandidateProfile, job *model.JobProfile) float64
	SalaryScore(candidate *model.CandidateProfile, job *model.JobProfile) float64
	ExperienceScore(candidate *model.CandidateProfile, job *model.JobProfile) float64
	EmployabilityScore(candidate *model.CandidateProfile, scores []model.Score) float64
}

type fitService struct {
	// minSalaryOverlap is the overlap ratio below which the salary
	// sub-score drops to zero.
	minSalaryOverlap float64
}

func NewFitService() FitService {
	return &fitService{minSalaryOverlap: 0.1}
}

func sameLocality(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	return a != "" && a == b
}

// LocationScore: 1.0 same city, 0.6 same country, a 0.8 floor when both
// sides work remote, 0 otherwise. A remote-friendly job adds a bounded bonus.
func (s *fitService) LocationScore(candidate *model.CandidateProfile, job *model.JobProfile) float64 {
	var score float64
	switch {
	case sameLocality(candidate.City, job.City):
		score = 1.0
	case sameLocality(candidate.Country, job.Country):
		score = 0.6
	}
	if job.Remote && candidate.RemoteOK && score < 0.8 {
		score = 0.8
	}
	if job.Remote {
		score += 0.1
	}
	if score > 1 {
		score = 1
	}
	return score
}

// SalaryScore compares the candidate's expected range against the job's
// offered range: full containment of the expectation scores 1.0, partial
// overlap degrades linearly with the covered fraction of the expectation
// range, and ratios under the configured minimum score 0. Disjoint ranges
// have zero overlap and fall under the same cut, so a lower offer never
// scores above a higher one.
func (s *fitService) SalaryScore(candidate *model.CandidateProfile, job *model.JobProfile) float64 {
	cMin, cMax := candidate.SalaryMin, candidate.SalaryMax
	jMin, jMax := job.SalaryMin, job.SalaryMax
	if cMax <= 0 || jMax <= 0 {
		// One side undisclosed: no signal either way.
		return 0.5
	}
	if cMin > cMax {
		cMin, cMax = cMax, cMin
	}
	if jMin > jMax {
		jMin, jMax = jMax, jMin
	}

	// Job offers at or above the whole expectation range.
	if jMin >= cMax {
		return 1.0
	}

	overlap := minFloat(cMax, jMax) - maxFloat(cMin, jMin)
	width := cMax - cMin
	if width <= 0 {
		// Point expectation: the job either meets it or it does not.
		if overlap >= 0 {
			return 1.0
		}
		return 0
	}
	ratio := overlap / width
	if ratio >= 1 {
		return 1.0
	}
	if ratio < s.minSalaryOverlap {
		return 0
	}
	return ratio
}

// ExperienceScore: exact seniority 1.0, adjacent tier 0.6, two tiers apart
// 0.3, anything further 0.1. Unknown tiers score the neutral midpoint.
func (s *fitService) ExperienceScore(candidate *model.CandidateProfile, job *model.JobProfile) float64 {
	candidateRank := candidate.ExperienceLevel.Rank()
	jobRank := job.Seniority.Rank()
	if candidateRank < 0 || jobRank < 0 {
		return 0.5
	}
	distance := candidateRank - jobRank
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return 1.0
	case 1:
		return 0.6
	case 2:
		return 0.3
	default:
		return 0.1
	}
}

// EmployabilityScore is a readiness signal blending test outcomes with
// profile completeness. A candidate with no completed tests starts from the
// neutral midpoint on the test component.
func (s *fitService) EmployabilityScore(candidate *model.CandidateProfile, scores []model.Score) float64 {
	testComponent := 0.5
	if len(scores) > 0 {
		passed := 0
		for _, score := range scores {
			if score.Passed {
				passed++
			}
		}
		testComponent = float64(passed) / float64(len(scores))
	}

	completeness := 0.0
	checks := []bool{
		len(candidate.Skills) > 0,
		candidate.City != "" || candidate.Country != "",
		candidate.SalaryMax > 0,
		candidate.ExperienceLevel.Rank() >= 0,
	}
	for _, ok := range checks {
		if ok {
			completeness += 1.0 / float64(len(checks))
		}
	}

	return 0.6*testComponent + 0.4*completeness
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
