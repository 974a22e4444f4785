package service

import (
	"testing"

	"github.com/lshigami/Caracal/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestLocationScore(t *testing.T) {
	svc := NewFitService()

	cases := []struct {
		name      string
		candidate model.CandidateProfile
		job       model.JobProfile
		want      float64
	}{
		{
			name:      "same city",
			candidate: model.CandidateProfile{City: "Berlin", Country: "Germany"},
			job:       model.JobProfile{City: "berlin", Country: "Germany"},
			want:      1.0,
		},
		{
			name:      "same country different city",
			candidate: model.CandidateProfile{City: "Munich", Country: "Germany"},
			job:       model.JobProfile{City: "Berlin", Country: "Germany"},
			want:      0.6,
		},
		{
			name:      "remote job with remote candidate floors at 0.8 plus bonus",
			candidate: model.CandidateProfile{City: "Lisbon", Country: "Portugal", RemoteOK: true},
			job:       model.JobProfile{City: "Berlin", Country: "Germany", Remote: true},
			want:      0.9,
		},
		{
			name:      "remote bonus never exceeds 1.0",
			candidate: model.CandidateProfile{City: "Berlin", Country: "Germany", RemoteOK: true},
			job:       model.JobProfile{City: "Berlin", Country: "Germany", Remote: true},
			want:      1.0,
		},
		{
			name:      "no overlap at all",
			candidate: model.CandidateProfile{City: "Lisbon", Country: "Portugal"},
			job:       model.JobProfile{City: "Berlin", Country: "Germany"},
			want:      0.0,
		},
		{
			name:      "remote job alone still earns the bonus",
			candidate: model.CandidateProfile{City: "Lisbon", Country: "Portugal"},
			job:       model.JobProfile{City: "Berlin", Country: "Germany", Remote: true},
			want:      0.1,
		},
		{
			name:      "empty locations never match each other",
			candidate: model.CandidateProfile{},
			job:       model.JobProfile{},
			want:      0.0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.LocationScore(&tc.candidate, &tc.job)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestSalaryScore(t *testing.T) {
	svc := NewFitService()

	cases := []struct {
		name      string
		candidate model.CandidateProfile
		job       model.JobProfile
		want      float64
	}{
		{
			name:      "either side undisclosed is neutral",
			candidate: model.CandidateProfile{},
			job:       model.JobProfile{SalaryMin: 50000, SalaryMax: 70000},
			want:      0.5,
		},
		{
			name:      "job floor above expectation ceiling",
			candidate: model.CandidateProfile{SalaryMin: 50000, SalaryMax: 60000},
			job:       model.JobProfile{SalaryMin: 65000, SalaryMax: 80000},
			want:      1.0,
		},
		{
			name:      "half the expectation range covered",
			candidate: model.CandidateProfile{SalaryMin: 50000, SalaryMax: 70000},
			job:       model.JobProfile{SalaryMin: 40000, SalaryMax: 60000},
			want:      0.5,
		},
		{
			name:      "overlap below the minimum ratio is zero",
			candidate: model.CandidateProfile{SalaryMin: 50000, SalaryMax: 70000},
			job:       model.JobProfile{SalaryMin: 40000, SalaryMax: 51000},
			want:      0.0,
		},
		{
			name:      "disjoint below expectation is zero",
			candidate: model.CandidateProfile{SalaryMin: 100000, SalaryMax: 120000},
			job:       model.JobProfile{SalaryMin: 70000, SalaryMax: 90000},
			want:      0.0,
		},
		{
			name:      "far below expectation is zero",
			candidate: model.CandidateProfile{SalaryMin: 100000, SalaryMax: 120000},
			job:       model.JobProfile{SalaryMin: 10000, SalaryMax: 20000},
			want:      0.0,
		},
		{
			name:      "point expectation inside the offered range",
			candidate: model.CandidateProfile{SalaryMin: 60000, SalaryMax: 60000},
			job:       model.JobProfile{SalaryMin: 50000, SalaryMax: 70000},
			want:      1.0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.SalaryScore(&tc.candidate, &tc.job)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestSalaryScoreMonotonicInJobCeiling(t *testing.T) {
	svc := NewFitService()
	candidate := model.CandidateProfile{SalaryMin: 50000, SalaryMax: 70000}

	// Lowering the job's ceiling must never raise the score, including
	// across the minimum-overlap cut and into the disjoint region.
	ceilings := []float64{75000, 70000, 60000, 53000, 51000, 50000, 49999, 40000, 10000}
	previous := 2.0
	for _, ceiling := range ceilings {
		job := model.JobProfile{SalaryMin: 10000, SalaryMax: ceiling}
		got := svc.SalaryScore(&candidate, &job)
		assert.LessOrEqual(t, got, previous, "ceiling %v scored %v, above %v for a higher ceiling", ceiling, got, previous)
		previous = got
	}

	barely := model.JobProfile{SalaryMin: 10000, SalaryMax: 51000}
	disjoint := model.JobProfile{SalaryMin: 10000, SalaryMax: 49999}
	assert.LessOrEqual(t, svc.SalaryScore(&candidate, &disjoint), svc.SalaryScore(&candidate, &barely))
}

func TestExperienceScore(t *testing.T) {
	svc := NewFitService()

	cases := []struct {
		candidate model.ExperienceLevel
		job       model.ExperienceLevel
		want      float64
	}{
		{model.ExperienceSenior, model.ExperienceSenior, 1.0},
		{model.ExperienceMid, model.ExperienceSenior, 0.6},
		{model.ExperienceSenior, model.ExperienceMid, 0.6},
		{model.ExperienceJunior, model.ExperienceSenior, 0.3},
		{model.ExperienceJunior, model.ExperienceLead, 0.1},
		{"", model.ExperienceSenior, 0.5},
		{model.ExperienceSenior, "", 0.5},
	}
	for _, tc := range cases {
		candidate := model.CandidateProfile{ExperienceLevel: tc.candidate}
		job := model.JobProfile{Seniority: tc.job}
		got := svc.ExperienceScore(&candidate, &job)
		assert.InDelta(t, tc.want, got, 1e-9, "%s vs %s", tc.candidate, tc.job)
	}
}

func TestEmployabilityScore(t *testing.T) {
	svc := NewFitService()

	fullProfile := model.CandidateProfile{
		Skills:          []string{"go"},
		City:            "Berlin",
		SalaryMax:       80000,
		ExperienceLevel: model.ExperienceMid,
	}

	t.Run("no tests is neutral on the test component", func(t *testing.T) {
		got := svc.EmployabilityScore(&fullProfile, nil)
		assert.InDelta(t, 0.6*0.5+0.4*1.0, got, 1e-9)
	})

	t.Run("all tests passed with full profile", func(t *testing.T) {
		scores := []model.Score{{Passed: true}, {Passed: true}}
		got := svc.EmployabilityScore(&fullProfile, scores)
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("half passed with empty profile", func(t *testing.T) {
		empty := model.CandidateProfile{}
		scores := []model.Score{{Passed: true}, {Passed: false}}
		got := svc.EmployabilityScore(&empty, scores)
		assert.InDelta(t, 0.6*0.5, got, 1e-9)
	})
}
