package model

import (
	"time"

	"gorm.io/gorm"
)

// SkillTestMapping ties a skill to a technical test whose score counts as
// evidence for that skill. A skill may map to several tests and vice versa.
type SkillTestMapping struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Skill     string         `json:"skill" gorm:"not null;uniqueIndex:idx_skill_test"`
	TestID    uint           `json:"test_id" gorm:"not null;uniqueIndex:idx_skill_test"`
	Test      Test           `json:"-" gorm:"foreignKey:TestID"`
	Weight    float64        `json:"weight" gorm:"not null;default:1"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
