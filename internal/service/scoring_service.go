package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScoringService turns a set of submitted answers into a deterministic,
// auditable Score with duplicate-submission protection.
type ScoringService interface {
	Score(userID, testID uint, answers map[uint]string, timeTakenSeconds int) (*model.Score, error)
	Recalculate(submissionID uint) (*model.Score, error)
	GetBySubmission(submissionID uint) (*model.Score, error)
}

type scoringService struct {
	testRepo       repository.TestRepository
	submissionRepo repository.SubmissionRepository
	scoreRepo      repository.ScoreRepository
	cfg            config.Scoring
}

func NewScoringService(
	testRepo repository.TestRepository,
	submissionRepo repository.SubmissionRepository,
	scoreRepo repository.ScoreRepository,
	cfg *config.Config,
) ScoringService {
	return &scoringService{
		testRepo:       testRepo,
		submissionRepo: submissionRepo,
		scoreRepo:      scoreRepo,
		cfg:            cfg.Scoring,
	}
}

// contributionFunc computes one question's points, the best achievable points
// and whether the answer counts as fully correct. Selected once per test from
// its scoring mode.
type contributionFunc func(q *model.Question, selected string) (points, best float64, correct bool, err error)

func contributionFor(mode model.ScoringMode) (contributionFunc, error) {
	switch mode {
	case model.ScoringModeStandard:
		return standardContribution, nil
	case model.ScoringModeOptionWeighted:
		return optionWeightedContribution, nil
	default:
		return nil, fmt.Errorf("unknown scoring mode %q", mode)
	}
}

func standardContribution(q *model.Question, selected string) (float64, float64, bool, error) {
	if q.CorrectOption == nil {
		return 0, 0, false, fmt.Errorf("question %d has no correct option configured", q.ID)
	}
	coefficient := q.Difficulty.Coefficient()
	if selected == *q.CorrectOption {
		return coefficient, coefficient, true, nil
	}
	return 0, coefficient, false, nil
}

func optionWeightedContribution(q *model.Question, selected string) (float64, float64, bool, error) {
	scores := q.OptionScores.Data()
	best, ok := q.BestOptionScore()
	if !ok {
		return 0, 0, false, fmt.Errorf("question %d has no option scores configured", q.ID)
	}
	points, ok := scores[selected]
	if !ok {
		return 0, 0, false, fmt.Errorf("option %q of question %d carries no score", selected, q.ID)
	}
	return float64(points), float64(best), points == best, nil
}

func gradeLetter(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

func (s *scoringService) Score(userID, testID uint, answers map[uint]string, timeTakenSeconds int) (*model.Score, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Score: test not found")
		return nil, fmt.Errorf("test not found with ID %d: %w", testID, err)
	}
	if len(test.Questions) == 0 {
		return nil, &ScoringConfigurationError{TestID: testID, Reason: "test has no questions"}
	}

	questionCount := len(test.Questions)
	minSeconds := questionCount * s.cfg.MinSecondsPerQuestion
	maxSeconds := questionCount * s.cfg.MaxSecondsPerQuestion
	if timeTakenSeconds < minSeconds || timeTakenSeconds > maxSeconds {
		return nil, &ImplausibleTimingError{
			TimeTakenSeconds: timeTakenSeconds,
			MinSeconds:       minSeconds,
			MaxSeconds:       maxSeconds,
		}
	}

	if err := validateCompleteness(test, answers); err != nil {
		return nil, err
	}

	// Pre-check keeps the common duplicate path cheap; the unique index on
	// (user_id, test_id) closes the race window below.
	if existing, findErr := s.submissionRepo.FindByUserAndTest(userID, testID); findErr == nil {
		return nil, s.duplicateOutcome(existing)
	}

	score, err := computeScore(test, answers, timeTakenSeconds, s.cfg.PassThreshold)
	if err != nil {
		return nil, err
	}
	score.UserID = userID
	score.TestID = testID

	submission := &model.Submission{
		UserID:           userID,
		TestID:           testID,
		Answers:          model.EncodeAnswers(answers),
		TimeTakenSeconds: timeTakenSeconds,
		Completed:        true,
	}

	if err := s.submissionRepo.CreateWithScore(submission, score); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent submit; surface the winner's score.
			if existing, findErr := s.submissionRepo.FindByUserAndTest(userID, testID); findErr == nil {
				return nil, s.duplicateOutcome(existing)
			}
		}
		log.Error().Err(err).Uint("userID", userID).Uint("testID", testID).Msg("Score: failed to persist submission")
		return nil, fmt.Errorf("failed to persist scored submission: %w", err)
	}

	log.Info().
		Uint("userID", userID).
		Uint("testID", testID).
		Float64("percentage", score.Percentage).
		Str("grade", score.GradeLetter).
		Bool("passed", score.Passed).
		Msg("submission scored")
	return score, nil
}

func (s *scoringService) Recalculate(submissionID uint) (*model.Score, error) {
	submission, err := s.submissionRepo.FindByID(submissionID)
	if err != nil {
		return nil, fmt.Errorf("submission not found with ID %d: %w", submissionID, err)
	}
	test, err := s.testRepo.FindByIDWithQuestions(submission.TestID)
	if err != nil {
		return nil, fmt.Errorf("test not found with ID %d: %w", submission.TestID, err)
	}
	if len(test.Questions) == 0 {
		return nil, &ScoringConfigurationError{TestID: test.ID, Reason: "test has no questions"}
	}

	answers := decodeAnswers(submission.Answers)
	recomputed, err := computeScore(test, answers, submission.TimeTakenSeconds, s.cfg.PassThreshold)
	if err != nil {
		return nil, err
	}

	existing, err := s.scoreRepo.FindBySubmissionID(submissionID)
	if err != nil {
		return nil, fmt.Errorf("score not found for submission %d: %w", submissionID, err)
	}

	// Keep identity, replace every computed value.
	recomputed.ID = existing.ID
	recomputed.SubmissionID = existing.SubmissionID
	recomputed.UserID = existing.UserID
	recomputed.TestID = existing.TestID
	recomputed.CreatedAt = existing.CreatedAt

	if err := s.scoreRepo.Replace(recomputed); err != nil {
		return nil, fmt.Errorf("failed to replace score for submission %d: %w", submissionID, err)
	}
	log.Info().Uint("submissionID", submissionID).Float64("percentage", recomputed.Percentage).Msg("score recalculated")
	return recomputed, nil
}

func (s *scoringService) GetBySubmission(submissionID uint) (*model.Score, error) {
	score, err := s.scoreRepo.FindBySubmissionID(submissionID)
	if err != nil {
		return nil, fmt.Errorf("score not found for submission %d: %w", submissionID, err)
	}
	return score, nil
}

func (s *scoringService) duplicateOutcome(submission *model.Submission) error {
	dup := &DuplicateSubmissionError{
		SubmissionID: submission.ID,
		SubmittedAt:  submission.SubmittedAt,
	}
	if score, err := s.scoreRepo.FindBySubmissionID(submission.ID); err == nil {
		dup.ScoreID = score.ID
		dup.Percentage = score.Percentage
	}
	return dup
}

// validateCompleteness enforces the strict-completeness policy: every
// question needs an answer naming one of its options. An answer selecting an
// option the question does not have leaves the question effectively
// unanswered.
func validateCompleteness(test *model.Test, answers map[uint]string) error {
	var missing []uint
	for i := range test.Questions {
		q := &test.Questions[i]
		selected, ok := answers[q.ID]
		if !ok || !q.HasOption(selected) {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return &IncompleteSubmissionError{TestID: test.ID, MissingQuestionIDs: missing}
	}
	return nil
}

// computeScore runs the pure scoring algorithm. It assumes answers already
// passed completeness validation.
func computeScore(test *model.Test, answers map[uint]string, timeTakenSeconds int, passThreshold float64) (*model.Score, error) {
	contribute, err := contributionFor(test.ScoringMode)
	if err != nil {
		return nil, &ScoringConfigurationError{TestID: test.ID, Reason: err.Error()}
	}

	var rawScore, maxPossible float64
	tiers := map[model.Difficulty]*model.TierBreakdown{
		model.DifficultyEasy:   {},
		model.DifficultyMedium: {},
		model.DifficultyHard:   {},
	}

	for i := range test.Questions {
		q := &test.Questions[i]
		points, best, correct, err := contribute(q, answers[q.ID])
		if err != nil {
			return nil, &ScoringConfigurationError{TestID: test.ID, Reason: err.Error()}
		}
		rawScore += points
		maxPossible += best

		tier := tiers[q.Difficulty]
		if tier == nil {
			tier = &model.TierBreakdown{}
			tiers[q.Difficulty] = tier
		}
		tier.Total++
		tier.SubScore += points
		tier.MaxSubScore += best
		if correct {
			tier.Correct++
		}
	}

	if maxPossible <= 0 {
		return nil, &ScoringConfigurationError{TestID: test.ID, Reason: "max possible score is zero"}
	}

	percentage := rawScore / maxPossible * 100
	if test.ScoringMode == model.ScoringModeStandard {
		// Standard contributions are non-negative, so this only guards
		// rounding noise; option-weighted percentages stay negative.
		if percentage < 0 {
			percentage = 0
		}
	}
	if percentage > 100 {
		percentage = 100
	}

	breakdown := model.DifficultyBreakdown{
		Easy:   *tiers[model.DifficultyEasy],
		Medium: *tiers[model.DifficultyMedium],
		Hard:   *tiers[model.DifficultyHard],
	}

	return &model.Score{
		RawScore:              rawScore,
		MaxPossible:           maxPossible,
		Percentage:            percentage,
		GradeLetter:           gradeLetter(percentage),
		Passed:                percentage >= passThreshold,
		Breakdown:             datatypes.NewJSONType(breakdown),
		AvgSecondsPerQuestion: float64(timeTakenSeconds) / float64(len(test.Questions)),
	}, nil
}

func decodeAnswers(stored datatypes.JSONType[map[string]string]) map[uint]string {
	raw := stored.Data()
	answers := make(map[uint]string, len(raw))
	for key, opt := range raw {
		qid, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		answers[uint(qid)] = opt
	}
	return answers
}
