package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobProfile struct {
	ID              uint                        `gorm:"primarykey" json:"id"`
	Title           string                      `json:"title" gorm:"not null"`
	Company         string                      `json:"company"`
	RequiredSkills  datatypes.JSONSlice[string] `json:"required_skills"`
	PreferredSkills datatypes.JSONSlice[string] `json:"preferred_skills"`
	City            string                      `json:"city"`
	Country         string                      `json:"country"`
	Remote          bool                        `json:"remote"`
	SalaryMin       float64                     `json:"salary_min"`
	SalaryMax       float64                     `json:"salary_max"`
	Seniority       ExperienceLevel             `json:"seniority"`
	PostedAt        time.Time                   `json:"posted_at"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
	DeletedAt       gorm.DeletedAt              `gorm:"index" json:"-"`
}
