package service

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/rs/zerolog/log"
)

// ClusterModel is the externally trained artifact consumed by the cluster-fit
// sub-scorer: centroid vectors plus the feature schema used to build them.
// The feature space is one dimension per schema skill (one-hot) plus one
// trailing normalized test-performance dimension.
type ClusterModel struct {
	Version   string      `json:"version"`
	Skills    []string    `json:"skills"`
	Centroids [][]float64 `json:"centroids"`
}

func (m *ClusterModel) featureDim() int {
	return len(m.Skills) + 1
}

func (m *ClusterModel) validate() error {
	if len(m.Centroids) == 0 {
		return fmt.Errorf("cluster model %q has no centroids", m.Version)
	}
	dim := m.featureDim()
	for i, centroid := range m.Centroids {
		if len(centroid) != dim {
			return fmt.Errorf("centroid %d has %d features, schema needs %d", i, len(centroid), dim)
		}
	}
	return nil
}

// ClusterService answers nearest-centroid similarity queries against the
// currently loaded model. The model file is versioned and hot-swappable; a
// missing or broken artifact never fails recommendation generation.
type ClusterService interface {
	// FitScore returns the cluster-fit sub-score in [0,1]; 0 when no model
	// is loaded or the candidate and job land in different clusters.
	FitScore(candidate *model.CandidateProfile, candidateScores []model.Score, job *model.JobProfile) float64
	Reload() error
	StartWatching() error
	StopWatching()
}

type clusterService struct {
	mu      sync.RWMutex
	model   *ClusterModel
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewClusterService(cfg *config.Config) ClusterService {
	s := &clusterService{path: cfg.Cluster.ModelPath}
	if s.path == "" {
		log.Info().Msg("no cluster model configured, cluster-fit sub-score disabled")
		return s
	}
	if err := s.Reload(); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("cluster model unavailable, cluster-fit sub-score disabled")
	}
	return s
}

func (s *clusterService) Reload() error {
	if s.path == "" {
		return ErrMissingClusterModel
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read cluster model: %w", err)
	}
	var loaded ClusterModel
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse cluster model: %w", err)
	}
	if err := loaded.validate(); err != nil {
		return fmt.Errorf("invalid cluster model: %w", err)
	}

	s.mu.Lock()
	s.model = &loaded
	s.mu.Unlock()
	log.Info().Str("version", loaded.Version).Int("centroids", len(loaded.Centroids)).Msg("cluster model loaded")
	return nil
}

// StartWatching swaps the model in place whenever the artifact file changes.
// Load failures keep the previous model.
func (s *clusterService) StartWatching() error {
	if s.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create cluster model watcher: %w", err)
	}
	// Watch the directory: editors and atomic renames replace the file node.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch cluster model directory: %w", err)
	}
	s.watcher = watcher
	s.done = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := s.Reload(); err != nil {
					log.Warn().Err(err).Msg("cluster model reload failed, keeping previous model")
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("cluster model watcher error")
			case <-s.done:
				return
			}
		}
	}()
	log.Info().Str("path", s.path).Msg("cluster model watcher started")
	return nil
}

func (s *clusterService) StopWatching() {
	if s.watcher == nil {
		return
	}
	close(s.done)
	s.watcher.Close()
	s.watcher = nil
}

func (s *clusterService) current() *ClusterModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

func (s *clusterService) FitScore(candidate *model.CandidateProfile, candidateScores []model.Score, job *model.JobProfile) float64 {
	m := s.current()
	if m == nil {
		return 0
	}

	candidateVec := m.featureVector(candidate.Skills, performanceFeature(candidateScores))
	jobVec := m.featureVector(
		append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...),
		// Jobs are projected at the hiring bar rather than a perfect score,
		// matching how the centroids were trained.
		0.75,
	)

	candidateCluster, candidateDist := m.nearest(candidateVec)
	jobCluster, _ := m.nearest(jobVec)
	if candidateCluster < 0 || candidateCluster != jobCluster {
		return 0
	}
	return 1 / (1 + candidateDist)
}

// performanceFeature folds a candidate's completed scores into one [0,1]
// feature; candidates without scores sit at the neutral midpoint.
func performanceFeature(scores []model.Score) float64 {
	if len(scores) == 0 {
		return 0.5
	}
	var sum float64
	for _, score := range scores {
		p := score.Percentage / 100
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		sum += p
	}
	return sum / float64(len(scores))
}

func (m *ClusterModel) featureVector(skills []string, performance float64) []float64 {
	vec := make([]float64, m.featureDim())
	have := make(map[string]bool, len(skills))
	for _, skill := range skills {
		have[normalizeSkill(skill)] = true
	}
	for i, skill := range m.Skills {
		if have[normalizeSkill(skill)] {
			vec[i] = 1
		}
	}
	vec[len(vec)-1] = performance
	return vec
}

func (m *ClusterModel) nearest(vec []float64) (int, float64) {
	best := -1
	bestDist := math.MaxFloat64
	for i, centroid := range m.Centroids {
		var sum float64
		for j := range centroid {
			d := vec[j] - centroid[j]
			sum += d * d
		}
		dist := math.Sqrt(sum)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best, bestDist
}
