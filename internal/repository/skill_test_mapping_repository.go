package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

type SkillTestMappingRepository interface {
	Create(mapping *model.SkillTestMapping) error
	FindBySkills(skills []string) ([]model.SkillTestMapping, error)
}

type skillTestMappingRepository struct {
	db *gorm.DB
}

func NewSkillTestMappingRepository(db *gorm.DB) SkillTestMappingRepository {
	return &skillTestMappingRepository{db: db}
}

func (r *skillTestMappingRepository) Create(mapping *model.SkillTestMapping) error {
	return r.db.Create(mapping).Error
}

func (r *skillTestMappingRepository) FindBySkills(skills []string) ([]model.SkillTestMapping, error) {
	if len(skills) == 0 {
		return nil, nil
	}
	var mappings []model.SkillTestMapping
	err := r.db.Where("skill IN ?", skills).Find(&mappings).Error
	return mappings, err
}
