package model

import (
	"time"

	"gorm.io/gorm"
)

// ScoringMode selects how answers of a test are converted into points.
// A test's questions are homogeneous in scoring mode.
type ScoringMode string

const (
	// ScoringModeStandard awards the question's difficulty coefficient when
	// the selected option equals the correct option, zero otherwise.
	ScoringModeStandard ScoringMode = "standard"
	// ScoringModeOptionWeighted awards the signed score attached to the
	// selected option; used for situational-judgment tests.
	ScoringModeOptionWeighted ScoringMode = "option_weighted"
)

func (m ScoringMode) Valid() bool {
	return m == ScoringModeStandard || m == ScoringModeOptionWeighted
}

type Test struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	ScoringMode ScoringMode    `json:"scoring_mode" gorm:"not null;default:'standard'"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
