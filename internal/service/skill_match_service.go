package service

import (
	"sort"
	"strings"
)

// SkillMatchResult carries the skill-overlap score and the lists surfaced
// verbatim in recommendation explanations.
type SkillMatchResult struct {
	Score             float64
	RequiredCoverage  float64
	PreferredCoverage float64
	Matched           []string
	Missing           []string
	MissingRequired   []string
}

// SkillMatchService computes the overlap between a candidate's skills and a
// job's required/preferred skill sets.
type SkillMatchService interface {
	Match(candidateSkills, requiredSkills, preferredSkills []string) SkillMatchResult
}

type skillMatchService struct {
	requiredWeight  float64
	preferredWeight float64
}

func NewSkillMatchService() SkillMatchService {
	return &skillMatchService{requiredWeight: 1.0, preferredWeight: 0.5}
}

// normalizeSkill folds case and surrounding whitespace so "Python" and
// " python " count as the same skill.
func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

func toSkillSet(skills []string) map[string]string {
	set := make(map[string]string, len(skills))
	for _, skill := range skills {
		normalized := normalizeSkill(skill)
		if normalized == "" {
			continue
		}
		// Keep the first original spelling for display.
		if _, ok := set[normalized]; !ok {
			set[normalized] = strings.TrimSpace(skill)
		}
	}
	return set
}

func (s *skillMatchService) Match(candidateSkills, requiredSkills, preferredSkills []string) SkillMatchResult {
	candidate := toSkillSet(candidateSkills)
	required := toSkillSet(requiredSkills)
	preferred := toSkillSet(preferredSkills)

	coverage := func(wanted map[string]string) float64 {
		if len(wanted) == 0 {
			return 1.0
		}
		hits := 0
		for key := range wanted {
			if _, ok := candidate[key]; ok {
				hits++
			}
		}
		return float64(hits) / float64(len(wanted))
	}

	requiredCoverage := coverage(required)
	preferredCoverage := coverage(preferred)

	score := (requiredCoverage*s.requiredWeight + preferredCoverage*s.preferredWeight) /
		(s.requiredWeight + s.preferredWeight)
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	result := SkillMatchResult{
		Score:             score,
		RequiredCoverage:  requiredCoverage,
		PreferredCoverage: preferredCoverage,
	}

	seen := make(map[string]bool)
	appendOnce := func(list *[]string, key, display string) {
		if !seen[key] {
			seen[key] = true
			*list = append(*list, display)
		}
	}
	for key, display := range required {
		if _, ok := candidate[key]; ok {
			appendOnce(&result.Matched, key, display)
		} else {
			appendOnce(&result.Missing, key, display)
			result.MissingRequired = append(result.MissingRequired, display)
		}
	}
	for key, display := range preferred {
		if _, ok := candidate[key]; ok {
			appendOnce(&result.Matched, key, display)
		} else {
			appendOnce(&result.Missing, key, display)
		}
	}

	sort.Strings(result.Matched)
	sort.Strings(result.Missing)
	sort.Strings(result.MissingRequired)
	return result
}
