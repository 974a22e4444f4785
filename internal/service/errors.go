package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingClusterModel signals that no cluster model artifact is loaded.
// Recoverable: the cluster-fit sub-score defaults to 0.
var ErrMissingClusterModel = errors.New("cluster model not loaded")

// ErrNoRelevantTestData signals that a candidate has no completed test that
// maps to any of a job's skills. Recoverable: the technical sub-score
// defaults to a neutral midpoint rather than zero.
var ErrNoRelevantTestData = errors.New("no completed tests relevant to job skills")

// IncompleteSubmissionError rejects a submission missing an answer for one or
// more questions. Partial submissions are never scored; treating unanswered
// questions as wrong would skew percentage and duplicate-submission
// semantics.
type IncompleteSubmissionError struct {
	TestID             uint
	MissingQuestionIDs []uint
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("submission for test %d is missing answers for %d question(s)", e.TestID, len(e.MissingQuestionIDs))
}

// ImplausibleTimingError rejects a submission whose total time falls outside
// the plausible window for the test's question count.
type ImplausibleTimingError struct {
	TimeTakenSeconds int
	MinSeconds       int
	MaxSeconds       int
}

func (e *ImplausibleTimingError) Error() string {
	return fmt.Sprintf("time taken %ds is outside the plausible window [%ds, %ds]", e.TimeTakenSeconds, e.MinSeconds, e.MaxSeconds)
}

// DuplicateSubmissionError is not a failure: it carries the prior result so
// callers can present it instead of erroring blindly.
type DuplicateSubmissionError struct {
	SubmissionID uint
	ScoreID      uint
	Percentage   float64
	SubmittedAt  time.Time
}

func (e *DuplicateSubmissionError) Error() string {
	return fmt.Sprintf("test already scored: submission %d, %.2f%%", e.SubmissionID, e.Percentage)
}

// ScoringConfigurationError is an operator-facing fatal condition: the test
// is configured such that no score can be computed (zero max possible score).
type ScoringConfigurationError struct {
	TestID uint
	Reason string
}

func (e *ScoringConfigurationError) Error() string {
	return fmt.Sprintf("test %d is not scorable: %s", e.TestID, e.Reason)
}
