package model

import (
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission is one scored attempt of a test by a user. The composite unique
// index enforces at-most-one-scored-submission per (user, test) at the
// database level; the scoring engine translates violations into the
// duplicate-submission outcome.
type Submission struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_submissions_user_test"`
	TestID uint `json:"test_id" gorm:"not null;uniqueIndex:idx_submissions_user_test"`
	Test   Test `json:"test,omitempty" gorm:"foreignKey:TestID"`
	// Answers maps question id (as decimal string, JSON object keys are
	// strings) to the selected option key.
	Answers          datatypes.JSONType[map[string]string] `json:"answers"`
	TimeTakenSeconds int                                   `json:"time_taken_seconds" gorm:"not null"`
	Completed        bool                                  `json:"completed" gorm:"not null;default:false"`
	SubmittedAt      time.Time                             `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt        time.Time                             `json:"created_at"`
	UpdatedAt        time.Time                             `json:"updated_at"`
	DeletedAt        gorm.DeletedAt                        `gorm:"index" json:"-"`
}

// AnswerFor returns the selected option for a question id.
func (s *Submission) AnswerFor(questionID uint) (string, bool) {
	answers := s.Answers.Data()
	v, ok := answers[strconv.FormatUint(uint64(questionID), 10)]
	return v, ok
}

// EncodeAnswers converts a question-id keyed answer map into the stored form.
func EncodeAnswers(answers map[uint]string) datatypes.JSONType[map[string]string] {
	encoded := make(map[string]string, len(answers))
	for qid, opt := range answers {
		encoded[strconv.FormatUint(uint64(qid), 10)] = opt
	}
	return datatypes.NewJSONType(encoded)
}
