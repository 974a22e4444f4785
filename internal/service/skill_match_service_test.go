package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillMatchWeightedCoverage(t *testing.T) {
	svc := NewSkillMatchService()

	// Half the required skills and all preferred skills:
	// (0.5*1.0 + 1.0*0.5) / 1.5 = 0.6667.
	result := svc.Match(
		[]string{"Go", "Docker"},
		[]string{"Go", "Kubernetes"},
		[]string{"Docker"},
	)

	assert.InDelta(t, 0.5, result.RequiredCoverage, 1e-9)
	assert.InDelta(t, 1.0, result.PreferredCoverage, 1e-9)
	assert.InDelta(t, 2.0/3.0, result.Score, 1e-9)
	assert.Equal(t, []string{"Docker", "Go"}, result.Matched)
	assert.Equal(t, []string{"Kubernetes"}, result.Missing)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingRequired)
}

func TestSkillMatchFullCoverage(t *testing.T) {
	svc := NewSkillMatchService()

	// A superset of everything the job wants scores exactly 1.0.
	result := svc.Match(
		[]string{"go", "kubernetes", "docker", "terraform", "rust"},
		[]string{"Go", "Kubernetes"},
		[]string{"Docker"},
	)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.MissingRequired)
}

func TestSkillMatchEmptyJobSets(t *testing.T) {
	svc := NewSkillMatchService()

	result := svc.Match([]string{"go"}, nil, nil)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.InDelta(t, 1.0, result.RequiredCoverage, 1e-9)
	assert.InDelta(t, 1.0, result.PreferredCoverage, 1e-9)
}

func TestSkillMatchNormalization(t *testing.T) {
	svc := NewSkillMatchService()

	// Case and whitespace differences do not create misses, and duplicate
	// spellings collapse into a single skill.
	result := svc.Match(
		[]string{"  PYTHON ", "python"},
		[]string{"Python"},
		nil,
	)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Equal(t, []string{"Python"}, result.Matched)
}

func TestSkillMatchMonotonicity(t *testing.T) {
	svc := NewSkillMatchService()
	required := []string{"go", "kubernetes", "postgres"}
	preferred := []string{"docker", "terraform"}

	// Adding a matching skill never lowers the score.
	prev := svc.Match(nil, required, preferred).Score
	candidate := []string{}
	for _, skill := range append(append([]string{}, required...), preferred...) {
		candidate = append(candidate, skill)
		next := svc.Match(candidate, required, preferred).Score
		assert.GreaterOrEqual(t, next, prev, "after adding %q", skill)
		prev = next
	}
	assert.InDelta(t, 1.0, prev, 1e-9)
}

func TestSkillMatchRequiredOutweighsPreferred(t *testing.T) {
	svc := NewSkillMatchService()
	required := []string{"go"}
	preferred := []string{"docker"}

	onlyRequired := svc.Match([]string{"go"}, required, preferred).Score
	onlyPreferred := svc.Match([]string{"docker"}, required, preferred).Score
	assert.Greater(t, onlyRequired, onlyPreferred)
}
