package dto

import "time"

type OptionDTO struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// QuestionResponseDTO is the candidate-facing question view; it never carries
// the correct option or the option score map.
type QuestionResponseDTO struct {
	ID          uint        `json:"id"`
	TestID      uint        `json:"test_id"`
	Prompt      string      `json:"prompt"`
	Difficulty  string      `json:"difficulty"`
	OrderInTest int         `json:"order_in_test"`
	Options     []OptionDTO `json:"options"`
}

type TestResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	ScoringMode string                `json:"scoring_mode"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

type TestSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	ScoringMode   string    `json:"scoring_mode"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
