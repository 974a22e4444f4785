package dto

import "time"

// SubmissionSubmitDTO is the request body for submitting all answers of a
// test in one shot.
type SubmissionSubmitDTO struct {
	UserID           uint            `json:"user_id" binding:"required"`
	Answers          map[uint]string `json:"answers" binding:"required"`
	TimeTakenSeconds int             `json:"time_taken_seconds" binding:"required,gt=0"`
}

type TierBreakdownDTO struct {
	Total       int     `json:"total"`
	Correct     int     `json:"correct"`
	SubScore    float64 `json:"sub_score"`
	MaxSubScore float64 `json:"max_sub_score"`
}

type DifficultyBreakdownDTO struct {
	Easy   TierBreakdownDTO `json:"easy"`
	Medium TierBreakdownDTO `json:"medium"`
	Hard   TierBreakdownDTO `json:"hard"`
}

type ScoreResponseDTO struct {
	ID                    uint                   `json:"id"`
	SubmissionID          uint                   `json:"submission_id"`
	UserID                uint                   `json:"user_id"`
	TestID                uint                   `json:"test_id"`
	RawScore              float64                `json:"raw_score"`
	MaxPossibleScore      float64                `json:"max_possible_score"`
	Percentage            float64                `json:"percentage"`
	GradeLetter           string                 `json:"grade_letter"`
	Passed                bool                   `json:"passed"`
	Breakdown             DifficultyBreakdownDTO `json:"breakdown"`
	AvgSecondsPerQuestion float64                `json:"avg_seconds_per_question"`
	CreatedAt             time.Time              `json:"created_at"`
}
