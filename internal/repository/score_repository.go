package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	FindBySubmissionID(submissionID uint) (*model.Score, error)
	FindAllByUser(userID uint) ([]model.Score, error)
	FindByUserAndTests(userID uint, testIDs []uint) ([]model.Score, error)
	// Replace atomically swaps the stored values of an existing score,
	// keeping its identity; used by recalculation.
	Replace(score *model.Score) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) FindBySubmissionID(submissionID uint) (*model.Score, error) {
	var score model.Score
	err := r.db.Where("submission_id = ?", submissionID).First(&score).Error
	return &score, err
}

func (r *scoreRepository) FindAllByUser(userID uint) ([]model.Score, error) {
	var scores []model.Score
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) FindByUserAndTests(userID uint, testIDs []uint) ([]model.Score, error) {
	if len(testIDs) == 0 {
		return nil, nil
	}
	var scores []model.Score
	err := r.db.Where("user_id = ? AND test_id IN ?", userID, testIDs).Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) Replace(score *model.Score) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(score).Error
	})
}
