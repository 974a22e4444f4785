package repository

import (
	"errors"

	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

type RecommendationWeightsRepository interface {
	// Get returns the tunable weight record, creating the default one on
	// first use.
	Get() (model.RecommendationWeights, error)
	Update(weights *model.RecommendationWeights) error
}

type recommendationWeightsRepository struct {
	db *gorm.DB
}

func NewRecommendationWeightsRepository(db *gorm.DB) RecommendationWeightsRepository {
	return &recommendationWeightsRepository{db: db}
}

func (r *recommendationWeightsRepository) Get() (model.RecommendationWeights, error) {
	var weights model.RecommendationWeights
	err := r.db.Order("id ASC").First(&weights).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		weights = model.DefaultRecommendationWeights()
		if createErr := r.db.Create(&weights).Error; createErr != nil {
			return weights, createErr
		}
		return weights, nil
	}
	return weights, err
}

func (r *recommendationWeightsRepository) Update(weights *model.RecommendationWeights) error {
	return r.db.Save(weights).Error
}
