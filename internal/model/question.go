package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Difficulty is the tier of a question; it determines the coefficient a
// correct answer is worth in standard scoring mode.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Coefficient returns the difficulty multiplier: easy 1.0, medium 1.5, hard 2.0.
func (d Difficulty) Coefficient() float64 {
	switch d {
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// Option is one selectable answer of a question.
type Option struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type Question struct {
	ID          uint                         `gorm:"primarykey" json:"id"`
	TestID      uint                         `json:"test_id" gorm:"not null;index"`
	Prompt      string                       `json:"prompt" gorm:"type:text;not null"`
	Difficulty  Difficulty                   `json:"difficulty" gorm:"not null"`
	OrderInTest int                          `json:"order_in_test" gorm:"not null"`
	Options     datatypes.JSONSlice[Option]  `json:"options"`
	// CorrectOption is set for standard-mode questions only.
	CorrectOption *string `json:"-" gorm:"type:varchar(8)"`
	// OptionScores maps option key to its signed score for option-weighted
	// questions. Observed range is -1..+2 but any signed value is accepted.
	OptionScores datatypes.JSONType[map[string]int] `json:"-"`
	CreatedAt    time.Time                          `json:"created_at"`
	UpdatedAt    time.Time                          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt                     `gorm:"index" json:"-"`
}

// BestOptionScore returns the highest score achievable on an option-weighted
// question, and false when no option scores are configured.
func (q *Question) BestOptionScore() (int, bool) {
	scores := q.OptionScores.Data()
	if len(scores) == 0 {
		return 0, false
	}
	first := true
	best := 0
	for _, s := range scores {
		if first || s > best {
			best = s
			first = false
		}
	}
	return best, true
}

// HasOption reports whether key is one of the question's options.
func (q *Question) HasOption(key string) bool {
	for _, opt := range q.Options {
		if opt.Key == key {
			return true
		}
	}
	return false
}
