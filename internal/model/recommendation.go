package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubScores is the fixed-schema component breakdown of a recommendation.
type SubScores struct {
	SkillMatch    float64 `json:"skill_match"`
	TechnicalTest float64 `json:"technical_test"`
	Experience    float64 `json:"experience"`
	Salary        float64 `json:"salary"`
	Location      float64 `json:"location"`
	ClusterFit    float64 `json:"cluster_fit"`
	Employability float64 `json:"employability"`
}

// Recommendation is the derived ranking record for one (candidate, job) pair.
// It is recomputed and upserted; never hand-edited.
type Recommendation struct {
	ID            uint                          `gorm:"primarykey" json:"id"`
	CandidateID   uint                          `json:"candidate_id" gorm:"not null;uniqueIndex:idx_recommendations_candidate_job"`
	JobID         uint                          `json:"job_id" gorm:"not null;uniqueIndex:idx_recommendations_candidate_job"`
	Job           JobProfile                    `json:"-" gorm:"foreignKey:JobID"`
	Overall       float64                       `json:"overall" gorm:"not null;index"`
	SubScores     datatypes.JSONType[SubScores] `json:"sub_scores"`
	MatchedSkills datatypes.JSONSlice[string]   `json:"matched_skills"`
	MissingSkills datatypes.JSONSlice[string]   `json:"missing_skills"`
	Explanations  datatypes.JSONSlice[string]   `json:"explanations"`
	ComputedAt    time.Time                     `json:"computed_at"`
	CreatedAt     time.Time                     `json:"created_at"`
	UpdatedAt     time.Time                     `json:"updated_at"`
	DeletedAt     gorm.DeletedAt                `gorm:"index" json:"-"`
}
