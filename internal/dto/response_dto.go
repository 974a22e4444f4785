package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ValidationErrorResponse carries enough structure (field, reason) to render
// a user-facing message for a rejected submission.
type ValidationErrorResponse struct {
	Message            string `json:"message"`
	Field              string `json:"field"`
	Reason             string `json:"reason"`
	MissingQuestionIDs []uint `json:"missing_question_ids,omitempty"`
}

// DuplicateSubmissionResponse is the 409 payload: the prior result, so
// clients can present it rather than erroring blindly.
type DuplicateSubmissionResponse struct {
	Message      string    `json:"message"`
	SubmissionID uint      `json:"submission_id"`
	ScoreID      uint      `json:"score_id"`
	Percentage   float64   `json:"percentage"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
