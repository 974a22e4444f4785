package dto

import "time"

// CandidateProfileCreateDTO registers a candidate profile for the
// recommendation engine. UserID ties the profile to test submissions.
type CandidateProfileCreateDTO struct {
	UserID          uint     `json:"user_id" binding:"required"`
	FullName        string   `json:"full_name"`
	Skills          []string `json:"skills"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	RemoteOK        bool     `json:"remote_ok"`
	SalaryMin       float64  `json:"salary_min" binding:"min=0"`
	SalaryMax       float64  `json:"salary_max" binding:"min=0"`
	ExperienceLevel string   `json:"experience_level" binding:"omitempty,oneof=junior mid senior lead"`
}

type JobProfileCreateDTO struct {
	Title           string     `json:"title" binding:"required"`
	Company         string     `json:"company"`
	RequiredSkills  []string   `json:"required_skills"`
	PreferredSkills []string   `json:"preferred_skills"`
	City            string     `json:"city"`
	Country         string     `json:"country"`
	Remote          bool       `json:"remote"`
	SalaryMin       float64    `json:"salary_min" binding:"min=0"`
	SalaryMax       float64    `json:"salary_max" binding:"min=0"`
	Seniority       string     `json:"seniority" binding:"omitempty,oneof=junior mid senior lead"`
	PostedAt        *time.Time `json:"posted_at"`
}
