package model

import (
	"time"
)

// RecommendationWeights is the admin-tunable weight set of the recommendation
// aggregator. It is loaded per computation and passed by value; there is no
// process-wide active record. Weights are applied as-is and deliberately not
// renormalized to sum to 1, so tuning one weight never silently rescales the
// others across historical scores.
type RecommendationWeights struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	SkillMatch    float64   `json:"skill_match" gorm:"not null;default:0.3"`
	TechnicalTest float64   `json:"technical_test" gorm:"not null;default:0.25"`
	Experience    float64   `json:"experience" gorm:"not null;default:0.15"`
	Salary        float64   `json:"salary" gorm:"not null;default:0.1"`
	Location      float64   `json:"location" gorm:"not null;default:0.1"`
	ClusterFit    float64   `json:"cluster_fit" gorm:"not null;default:0.05"`
	Employability float64   `json:"employability" gorm:"not null;default:0.05"`
	MinOverall    float64   `json:"min_overall" gorm:"not null;default:0.4"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DefaultRecommendationWeights returns the weight set used until an operator
// tunes one.
func DefaultRecommendationWeights() RecommendationWeights {
	return RecommendationWeights{
		SkillMatch:    0.3,
		TechnicalTest: 0.25,
		Experience:    0.15,
		Salary:        0.1,
		Location:      0.1,
		ClusterFit:    0.05,
		Employability: 0.05,
		MinOverall:    0.4,
	}
}
