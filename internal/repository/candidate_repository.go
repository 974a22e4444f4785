package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	Create(candidate *model.CandidateProfile) error
	FindByID(id uint) (*model.CandidateProfile, error)
	FindAll() ([]model.CandidateProfile, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *model.CandidateProfile) error {
	return r.db.Create(candidate).Error
}

func (r *candidateRepository) FindByID(id uint) (*model.CandidateProfile, error) {
	var candidate model.CandidateProfile
	err := r.db.First(&candidate, id).Error
	return &candidate, err
}

func (r *candidateRepository) FindAll() ([]model.CandidateProfile, error) {
	var candidates []model.CandidateProfile
	err := r.db.Find(&candidates).Error
	return candidates, err
}
