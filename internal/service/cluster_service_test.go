package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClusterModel(t *testing.T, path string, m ClusterModel) {
	t.Helper()
	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// twoClusterModel separates a backend cluster (go, postgres) from a frontend
// cluster (react, css). The trailing dimension is test performance.
func twoClusterModel() ClusterModel {
	return ClusterModel{
		Version: "v1",
		Skills:  []string{"go", "postgres", "react", "css"},
		Centroids: [][]float64{
			{1, 1, 0, 0, 0.75},
			{0, 0, 1, 1, 0.75},
		},
	}
}

func clusterFixture(t *testing.T, m *ClusterModel) ClusterService {
	t.Helper()
	cfg := &config.Config{}
	if m != nil {
		path := filepath.Join(t.TempDir(), "clusters.json")
		writeClusterModel(t, path, *m)
		cfg.Cluster.ModelPath = path
	}
	return NewClusterService(cfg)
}

func TestFitScoreWithoutModel(t *testing.T) {
	svc := clusterFixture(t, nil)
	candidate := &model.CandidateProfile{Skills: []string{"go"}}
	job := &model.JobProfile{RequiredSkills: []string{"go"}}
	assert.Zero(t, svc.FitScore(candidate, nil, job))
}

func TestFitScoreSameCluster(t *testing.T) {
	m := twoClusterModel()
	svc := clusterFixture(t, &m)

	candidate := &model.CandidateProfile{Skills: []string{"Go", "Postgres"}}
	job := &model.JobProfile{RequiredSkills: []string{"go"}, PreferredSkills: []string{"postgres"}}
	scores := []model.Score{{Percentage: 75}}

	// Candidate vector equals the backend centroid exactly, distance 0.
	got := svc.FitScore(candidate, scores, job)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestFitScoreDifferentClusters(t *testing.T) {
	m := twoClusterModel()
	svc := clusterFixture(t, &m)

	candidate := &model.CandidateProfile{Skills: []string{"react", "css"}}
	job := &model.JobProfile{RequiredSkills: []string{"go", "postgres"}}

	assert.Zero(t, svc.FitScore(candidate, nil, job))
}

func TestFitScoreDecaysWithDistance(t *testing.T) {
	m := twoClusterModel()
	svc := clusterFixture(t, &m)
	job := &model.JobProfile{RequiredSkills: []string{"go", "postgres"}}
	scores := []model.Score{{Percentage: 75}}

	exact := svc.FitScore(&model.CandidateProfile{Skills: []string{"go", "postgres"}}, scores, job)
	partial := svc.FitScore(&model.CandidateProfile{Skills: []string{"go"}}, scores, job)
	assert.Greater(t, exact, partial)
	assert.Greater(t, partial, 0.0)
}

func TestReloadRejectsBrokenModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clusters.json")
	good := twoClusterModel()
	writeClusterModel(t, path, good)

	cfg := &config.Config{}
	cfg.Cluster.ModelPath = path
	svc := NewClusterService(cfg)

	candidate := &model.CandidateProfile{Skills: []string{"go", "postgres"}}
	job := &model.JobProfile{RequiredSkills: []string{"go", "postgres"}}
	scores := []model.Score{{Percentage: 75}}
	require.Greater(t, svc.FitScore(candidate, scores, job), 0.0)

	// Centroid dimension no longer matches the schema.
	bad := good
	bad.Centroids = [][]float64{{1, 0}}
	writeClusterModel(t, path, bad)
	assert.Error(t, svc.Reload())

	// The previous model keeps serving.
	assert.Greater(t, svc.FitScore(candidate, scores, job), 0.0)
}

func TestReloadMissingFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cluster.ModelPath = filepath.Join(t.TempDir(), "absent.json")
	svc := NewClusterService(cfg)

	assert.Error(t, svc.Reload())
	assert.Zero(t, svc.FitScore(&model.CandidateProfile{}, nil, &model.JobProfile{}))
}

func TestPerformanceFeature(t *testing.T) {
	assert.InDelta(t, 0.5, performanceFeature(nil), 1e-9)
	assert.InDelta(t, 0.8, performanceFeature([]model.Score{{Percentage: 80}}), 1e-9)
	assert.InDelta(t, 0.5, performanceFeature([]model.Score{{Percentage: 0}, {Percentage: 100}}), 1e-9)
	// Negative option-weighted percentages clamp to 0 as a feature.
	assert.InDelta(t, 0.0, performanceFeature([]model.Score{{Percentage: -50}}), 1e-9)
}
