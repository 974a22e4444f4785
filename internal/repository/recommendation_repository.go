package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommendationRepository interface {
	// Upsert writes recommendations keyed by (candidate_id, job_id) so
	// repeated batch runs converge instead of duplicating rows.
	Upsert(recommendations []*model.Recommendation) error
	FindByCandidate(candidateID uint, limit int) ([]model.Recommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Upsert(recommendations []*model.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}
	return r.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "candidate_id"}, {Name: "job_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"overall", "sub_scores", "matched_skills", "missing_skills",
				"explanations", "computed_at", "updated_at",
			}),
		}).
		Create(&recommendations).Error
}

func (r *recommendationRepository) FindByCandidate(candidateID uint, limit int) ([]model.Recommendation, error) {
	var recommendations []model.Recommendation
	query := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("overall DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&recommendations).Error
	return recommendations, err
}
