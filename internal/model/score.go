package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TierBreakdown reports how a user did on the questions of one difficulty tier.
type TierBreakdown struct {
	Total       int     `json:"total"`
	Correct     int     `json:"correct"`
	SubScore    float64 `json:"sub_score"`
	MaxSubScore float64 `json:"max_sub_score"`
}

// DifficultyBreakdown is the per-tier portion of a Score. It replaces the
// free-form breakdown blobs of earlier iterations with a fixed schema.
type DifficultyBreakdown struct {
	Easy   TierBreakdown `json:"easy"`
	Medium TierBreakdown `json:"medium"`
	Hard   TierBreakdown `json:"hard"`
}

// Score is the 1:1 scored result of a Submission. Created once at scoring
// time and immutable thereafter except by explicit recalculation, which
// replaces its values atomically.
type Score struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	SubmissionID uint       `json:"submission_id" gorm:"not null;uniqueIndex"`
	Submission   Submission `json:"-" gorm:"foreignKey:SubmissionID"`
	UserID       uint       `json:"user_id" gorm:"not null;index"`
	TestID       uint       `json:"test_id" gorm:"not null;index"`
	RawScore     float64    `json:"raw_score" gorm:"not null"`
	MaxPossible  float64    `json:"max_possible_score" gorm:"not null"`
	// Percentage is clamped to [0,100] for standard tests; option-weighted
	// tests may legitimately hold a negative value.
	Percentage            float64                                 `json:"percentage" gorm:"not null"`
	GradeLetter           string                                  `json:"grade_letter" gorm:"type:varchar(1);not null"`
	Passed                bool                                    `json:"passed" gorm:"not null"`
	Breakdown             datatypes.JSONType[DifficultyBreakdown] `json:"breakdown"`
	AvgSecondsPerQuestion float64                                 `json:"avg_seconds_per_question"`
	CreatedAt             time.Time                               `json:"created_at"`
	UpdatedAt             time.Time                               `json:"updated_at"`
	DeletedAt             gorm.DeletedAt                          `gorm:"index" json:"-"`
}
