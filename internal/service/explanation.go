package service

import (
	"fmt"

	"github.com/lshigami/Caracal/internal/model"
)

// Explanation templates are selected purely from sub-score thresholds so the
// same inputs always produce the same sentences. The list always contains at
// least one strength and, when present, the top missing-skill gap.
func buildExplanations(sub model.SubScores, match SkillMatchResult, technical TechnicalBreakdown) []string {
	var explanations []string
	strengths := 0

	switch {
	case sub.SkillMatch >= 0.8:
		explanations = append(explanations, fmt.Sprintf("Strong skill match: %d relevant skill(s) covered", len(match.Matched)))
		strengths++
	case sub.SkillMatch >= 0.5:
		explanations = append(explanations, fmt.Sprintf("Good skill coverage: %d relevant skill(s) covered", len(match.Matched)))
		strengths++
	}

	if n := len(match.MissingRequired); n > 0 {
		explanations = append(explanations, fmt.Sprintf("Missing %d required skill(s), including %s", n, match.MissingRequired[0]))
	}

	if technical.Neutral {
		explanations = append(explanations, "No relevant test results yet")
	} else if sub.TechnicalTest >= 0.75 {
		explanations = append(explanations, "Excellent technical test performance")
		strengths++
	} else if sub.TechnicalTest < 0.4 {
		explanations = append(explanations, "Technical test results below the bar for this role")
	}

	if sub.Experience >= 1.0 {
		explanations = append(explanations, "Seniority level matches the role")
		strengths++
	} else if sub.Experience <= 0.3 {
		explanations = append(explanations, "Seniority level differs notably from the role")
	}

	if sub.Location >= 0.8 {
		explanations = append(explanations, "Good location fit")
		strengths++
	}

	if sub.Salary >= 0.9 {
		explanations = append(explanations, "Salary aligned with expectations")
		strengths++
	} else if sub.Salary < 0.4 {
		explanations = append(explanations, "Offered salary below expectations")
	}

	if sub.ClusterFit >= 0.5 {
		explanations = append(explanations, "Profile resembles successful matches for this role type")
		strengths++
	}

	if strengths == 0 {
		explanations = append(explanations, bestAreaExplanation(sub))
	}
	return explanations
}

// bestAreaExplanation guarantees one strength by naming the highest
// sub-score.
func bestAreaExplanation(sub model.SubScores) string {
	areas := []struct {
		name  string
		value float64
	}{
		{"skill coverage", sub.SkillMatch},
		{"technical test performance", sub.TechnicalTest},
		{"seniority fit", sub.Experience},
		{"salary fit", sub.Salary},
		{"location fit", sub.Location},
		{"role-type affinity", sub.ClusterFit},
		{"overall readiness", sub.Employability},
	}
	best := areas[0]
	for _, area := range areas[1:] {
		if area.value > best.value {
			best = area
		}
	}
	return fmt.Sprintf("Strongest area: %s", best.name)
}
