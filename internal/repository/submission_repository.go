package repository

import (
	"github.com/lshigami/Caracal/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	// CreateWithScore inserts the submission and its score in one
	// transaction. The unique index on (user_id, test_id) makes the pair
	// insert a compare-and-insert: the losing side of a race gets
	// gorm.ErrDuplicatedKey and no partial rows.
	CreateWithScore(submission *model.Submission, score *model.Score) error
	FindByID(id uint) (*model.Submission, error)
	FindByUserAndTest(userID, testID uint) (*model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) CreateWithScore(submission *model.Submission, score *model.Score) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		score.SubmissionID = submission.ID
		return tx.Create(score).Error
	})
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.First(&submission, id).Error
	return &submission, err
}

func (r *submissionRepository) FindByUserAndTest(userID, testID uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.Where("user_id = ? AND test_id = ?", userID, testID).First(&submission).Error
	return &submission, err
}
