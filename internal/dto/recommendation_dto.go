package dto

import "time"

type SubScoresDTO struct {
	SkillMatch    float64 `json:"skill_match"`
	TechnicalTest float64 `json:"technical_test"`
	Experience    float64 `json:"experience"`
	Salary        float64 `json:"salary"`
	Location      float64 `json:"location"`
	ClusterFit    float64 `json:"cluster_fit"`
	Employability float64 `json:"employability"`
}

type RecommendationDTO struct {
	JobID         uint         `json:"job_id"`
	JobTitle      string       `json:"job_title"`
	Company       string       `json:"company,omitempty"`
	Overall       float64      `json:"overall"`
	SubScores     SubScoresDTO `json:"sub_scores"`
	MatchedSkills []string     `json:"matched_skills"`
	MissingSkills []string     `json:"missing_skills"`
	Explanations  []string     `json:"explanations"`
	ComputedAt    time.Time    `json:"computed_at"`
}
