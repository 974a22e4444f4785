package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCandidateRepo struct {
	candidates []model.CandidateProfile
}

func (f *fakeCandidateRepo) Create(c *model.CandidateProfile) error {
	f.candidates = append(f.candidates, *c)
	return nil
}

func (f *fakeCandidateRepo) FindByID(id uint) (*model.CandidateProfile, error) {
	for i := range f.candidates {
		if f.candidates[i].ID == id {
			return &f.candidates[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCandidateRepo) FindAll() ([]model.CandidateProfile, error) {
	return append([]model.CandidateProfile{}, f.candidates...), nil
}

type fakeJobRepo struct {
	jobs []model.JobProfile
}

func (f *fakeJobRepo) Create(j *model.JobProfile) error {
	f.jobs = append(f.jobs, *j)
	return nil
}

func (f *fakeJobRepo) FindByID(id uint) (*model.JobProfile, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJobRepo) FindAll() ([]model.JobProfile, error) {
	return append([]model.JobProfile{}, f.jobs...), nil
}

// fakeRecommendationRepo is safe for the concurrent upserts RebuildAll does.
type fakeRecommendationRepo struct {
	mu       sync.Mutex
	upserted map[[2]uint]*model.Recommendation
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{upserted: map[[2]uint]*model.Recommendation{}}
}

func (f *fakeRecommendationRepo) Upsert(recommendations []*model.Recommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range recommendations {
		f.upserted[[2]uint{rec.CandidateID, rec.JobID}] = rec
	}
	return nil
}

func (f *fakeRecommendationRepo) FindByCandidate(candidateID uint, limit int) ([]model.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Recommendation
	for key, rec := range f.upserted {
		if key[0] == candidateID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Overall > out[j].Overall })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRecommendationRepo) stored() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserted)
}

type fakeWeightsRepo struct {
	weights model.RecommendationWeights
}

func (f *fakeWeightsRepo) Get() (model.RecommendationWeights, error) { return f.weights, nil }
func (f *fakeWeightsRepo) Update(w *model.RecommendationWeights) error {
	f.weights = *w
	return nil
}

// stubTechnical returns a fixed technical sub-score.
type stubTechnical struct {
	score   float64
	neutral bool
}

func (s stubTechnical) ScoreForJob(userID uint, job *model.JobProfile) (float64, TechnicalBreakdown, error) {
	breakdown := TechnicalBreakdown{Neutral: s.neutral}
	if s.neutral {
		return neutralTechnicalScore, breakdown, ErrNoRelevantTestData
	}
	return s.score, breakdown, nil
}

// stubCluster returns a fixed cluster-fit sub-score.
type stubCluster struct{ score float64 }

func (s stubCluster) FitScore(*model.CandidateProfile, []model.Score, *model.JobProfile) float64 {
	return s.score
}
func (s stubCluster) Reload() error        { return nil }
func (s stubCluster) StartWatching() error { return nil }
func (s stubCluster) StopWatching()        {}

type recommendationFixture struct {
	candidates *fakeCandidateRepo
	jobs       *fakeJobRepo
	recs       *fakeRecommendationRepo
	weights    *fakeWeightsRepo
	svc        RecommendationService
}

func newRecommendationFixture(technical TechnicalScoreService, cluster ClusterService) *recommendationFixture {
	f := &recommendationFixture{
		candidates: &fakeCandidateRepo{},
		jobs:       &fakeJobRepo{},
		recs:       newFakeRecommendationRepo(),
		weights:    &fakeWeightsRepo{weights: model.DefaultRecommendationWeights()},
	}
	cfg := scoringTestConfig()
	cfg.Recommendation = config.Recommendation{MinOverall: 0.4, DefaultLimit: 20, BatchConcurrency: 4}
	f.svc = NewRecommendationService(
		f.candidates,
		f.jobs,
		newFakeScoringStore(),
		f.weights,
		f.recs,
		NewSkillMatchService(),
		technical,
		NewFitService(),
		cluster,
		cfg,
	)
	return f
}

func fullFitCandidate(id, userID uint, skills ...string) model.CandidateProfile {
	return model.CandidateProfile{
		ID:              id,
		UserID:          userID,
		Skills:          skills,
		City:            "Berlin",
		Country:         "Germany",
		RemoteOK:        true,
		SalaryMin:       60000,
		SalaryMax:       80000,
		ExperienceLevel: model.ExperienceSenior,
	}
}

func berlinSeniorJob(id uint, title string, required []string) model.JobProfile {
	return model.JobProfile{
		ID:             id,
		Title:          title,
		Company:        "ACME",
		RequiredSkills: required,
		City:           "Berlin",
		Country:        "Germany",
		SalaryMin:      80000,
		SalaryMax:      100000,
		Seniority:      model.ExperienceSenior,
		PostedAt:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecommendAppliesWeightsAsIs(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{score: 0.8}, stubCluster{score: 0.5})

	candidate := fullFitCandidate(1, 11, "go", "postgres")
	job := berlinSeniorJob(1, "Backend Engineer", []string{"go", "postgres"})

	// Deliberately not summing to 1.
	weights := model.RecommendationWeights{
		SkillMatch:    2.0,
		TechnicalTest: 1.0,
		Experience:    0.5,
		Salary:        0.5,
		Location:      0.5,
		ClusterFit:    0.5,
		Employability: 0.0,
	}

	rec, err := f.svc.Recommend(&candidate, &job, weights)
	require.NoError(t, err)

	sub := rec.SubScores.Data()
	assert.InDelta(t, 1.0, sub.SkillMatch, 1e-9)
	assert.InDelta(t, 0.8, sub.TechnicalTest, 1e-9)
	assert.InDelta(t, 1.0, sub.Experience, 1e-9)
	assert.InDelta(t, 1.0, sub.Salary, 1e-9) // job floor at expectation ceiling
	assert.InDelta(t, 1.0, sub.Location, 1e-9)
	assert.InDelta(t, 0.5, sub.ClusterFit, 1e-9)

	expected := 2.0*sub.SkillMatch + 1.0*sub.TechnicalTest + 0.5*sub.Experience +
		0.5*sub.Salary + 0.5*sub.Location + 0.5*sub.ClusterFit
	assert.InDelta(t, expected, rec.Overall, 1e-9)
	assert.Greater(t, rec.Overall, 1.0, "unnormalized weights may push the overall past 1")
}

func TestRecommendForCandidateQualityCutAndRanking(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{neutral: true}, stubCluster{})

	f.candidates.candidates = []model.CandidateProfile{fullFitCandidate(1, 11, "go", "postgres")}
	perfect := berlinSeniorJob(1, "Backend Engineer", []string{"go", "postgres"})
	partial := berlinSeniorJob(2, "Platform Engineer", []string{"go", "kubernetes"})
	hopeless := model.JobProfile{
		ID:             3,
		Title:          "iOS Developer",
		RequiredSkills: []string{"swift", "objective-c", "xcode"},
		City:           "Tokyo",
		Country:        "Japan",
		Seniority:      model.ExperienceJunior,
		SalaryMin:      10000,
		SalaryMax:      20000,
		PostedAt:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}
	f.jobs.jobs = []model.JobProfile{hopeless, partial, perfect}

	got, err := f.svc.RecommendForCandidate(context.Background(), 1, 0)
	require.NoError(t, err)

	// The hopeless job falls under the MinOverall cut and is not stored at
	// all; the rest rank by overall descending.
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].JobID)
	assert.Equal(t, uint(2), got[1].JobID)
	assert.Greater(t, got[0].Overall, got[1].Overall)

	assert.Equal(t, 2, f.recs.stored())
	_, storedHopeless := f.recs.upserted[[2]uint{1, 3}]
	assert.False(t, storedHopeless)
}

func TestQualityCutFallsBackToConfigThreshold(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{neutral: true}, stubCluster{})

	// A weight row without a threshold leans on the configured default.
	f.weights.weights.MinOverall = 0
	f.candidates.candidates = []model.CandidateProfile{fullFitCandidate(1, 11, "go", "postgres")}
	perfect := berlinSeniorJob(1, "Backend Engineer", []string{"go", "postgres"})
	hopeless := model.JobProfile{
		ID:             2,
		Title:          "iOS Developer",
		RequiredSkills: []string{"swift", "objective-c", "xcode"},
		City:           "Tokyo",
		Country:        "Japan",
		Seniority:      model.ExperienceJunior,
		SalaryMin:      10000,
		SalaryMax:      20000,
		PostedAt:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}
	f.jobs.jobs = []model.JobProfile{hopeless, perfect}

	got, err := f.svc.RecommendForCandidate(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].JobID)
	_, storedHopeless := f.recs.upserted[[2]uint{1, 2}]
	assert.False(t, storedHopeless)
}

func TestStoredForCandidateReadsWithoutRecompute(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{neutral: true}, stubCluster{})
	f.candidates.candidates = []model.CandidateProfile{fullFitCandidate(1, 11, "go", "postgres")}
	f.jobs.jobs = []model.JobProfile{
		berlinSeniorJob(1, "Backend Engineer", []string{"go", "postgres"}),
		berlinSeniorJob(2, "Platform Engineer", []string{"go", "kubernetes"}),
	}

	_, err := f.svc.RecommendForCandidate(context.Background(), 1, 0)
	require.NoError(t, err)

	// A job that arrives after the compute stays invisible to the stored
	// read until the next compute or rebuild.
	f.jobs.jobs = append(f.jobs.jobs, berlinSeniorJob(3, "SRE", []string{"go"}))

	got, err := f.svc.StoredForCandidate(1, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].JobID, "stored rows come back ranked by overall")
	assert.Equal(t, uint(2), got[1].JobID)

	limited, err := f.svc.StoredForCandidate(1, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = f.svc.StoredForCandidate(42, 0)
	assert.Error(t, err)
}

func TestRecommendForCandidateTieBreaksOnRecency(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{neutral: true}, stubCluster{})
	f.candidates.candidates = []model.CandidateProfile{fullFitCandidate(1, 11, "go")}

	older := berlinSeniorJob(1, "Backend Engineer", []string{"go"})
	older.PostedAt = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := berlinSeniorJob(2, "Backend Engineer II", []string{"go"})
	newer.PostedAt = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	f.jobs.jobs = []model.JobProfile{older, newer}

	got, err := f.svc.RecommendForCandidate(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].JobID, "identical scores rank the fresher posting first")
}

func TestRecommendForCandidateLimit(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{neutral: true}, stubCluster{})
	f.candidates.candidates = []model.CandidateProfile{fullFitCandidate(1, 11, "go")}
	for i := uint(1); i <= 5; i++ {
		f.jobs.jobs = append(f.jobs.jobs, berlinSeniorJob(i, "Backend Engineer", []string{"go"}))
	}

	got, err := f.svc.RecommendForCandidate(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	// Every computed recommendation is stored, the limit only trims the
	// returned page.
	assert.Equal(t, 5, f.recs.stored())
}

func TestRebuildAllConvergesAndCounts(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{neutral: true}, stubCluster{})
	f.candidates.candidates = []model.CandidateProfile{
		fullFitCandidate(1, 11, "go", "postgres"),
		fullFitCandidate(2, 12, "go"),
		fullFitCandidate(3, 13, "react"),
	}
	f.jobs.jobs = []model.JobProfile{
		berlinSeniorJob(1, "Backend Engineer", []string{"go", "postgres"}),
		berlinSeniorJob(2, "Frontend Engineer", []string{"react"}),
	}

	first, err := f.svc.RebuildAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, f.recs.stored(), "stored rows match the reported count")

	// A second run converges on the same keys instead of duplicating.
	second, err := f.svc.RebuildAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, second, f.recs.stored())
}

func TestRebuildAllHonorsCancellation(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{neutral: true}, stubCluster{})
	f.candidates.candidates = []model.CandidateProfile{fullFitCandidate(1, 11, "go")}
	f.jobs.jobs = []model.JobProfile{berlinSeniorJob(1, "Backend Engineer", []string{"go"})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.svc.RebuildAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommendUnknownCandidate(t *testing.T) {
	f := newRecommendationFixture(stubTechnical{neutral: true}, stubCluster{})
	_, err := f.svc.RecommendForCandidate(context.Background(), 42, 0)
	assert.Error(t, err)
}
