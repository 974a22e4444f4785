package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *model.JobProfile) error
	FindByID(id uint) (*model.JobProfile, error)
	FindAll() ([]model.JobProfile, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *model.JobProfile) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id uint) (*model.JobProfile, error) {
	var job model.JobProfile
	err := r.db.First(&job, id).Error
	return &job, err
}

func (r *jobRepository) FindAll() ([]model.JobProfile, error) {
	var jobs []model.JobProfile
	err := r.db.Order("posted_at DESC").Find(&jobs).Error
	return jobs, err
}
