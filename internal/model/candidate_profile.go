package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExperienceLevel is a seniority tier shared by candidates and jobs.
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

// Rank orders seniority tiers so adjacency can be measured; unknown tiers
// return -1.
func (e ExperienceLevel) Rank() int {
	switch e {
	case ExperienceJunior:
		return 0
	case ExperienceMid:
		return 1
	case ExperienceSenior:
		return 2
	case ExperienceLead:
		return 3
	default:
		return -1
	}
}

// CandidateProfile holds the attributes of a candidate the recommendation
// engine reads. The profile is owned by the account subsystem; this service
// only consumes it.
type CandidateProfile struct {
	ID              uint                        `gorm:"primarykey" json:"id"`
	UserID          uint                        `json:"user_id" gorm:"not null;uniqueIndex"`
	FullName        string                      `json:"full_name"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`
	City            string                      `json:"city"`
	Country         string                      `json:"country"`
	RemoteOK        bool                        `json:"remote_ok"`
	SalaryMin       float64                     `json:"salary_min"`
	SalaryMax       float64                     `json:"salary_max"`
	ExperienceLevel ExperienceLevel             `json:"experience_level"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
	DeletedAt       gorm.DeletedAt              `gorm:"index" json:"-"`
}
