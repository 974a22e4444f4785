package service

import (
	"fmt"

	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserTestService serves the candidate-facing test catalog. Question views
// never expose answer keys or option scores.
type UserTestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	GetTestDetails(testID uint) (*dto.TestResponseDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests with question count from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	var dtos []dto.TestSummaryDTO
	for _, twc := range testsWithCount {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            twc.Test.ID,
			Title:         twc.Test.Title,
			Description:   twc.Test.Description,
			ScoringMode:   string(twc.Test.ScoringMode),
			QuestionCount: twc.QuestionCount,
			CreatedAt:     twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *userTestService) GetTestDetails(testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to get test details from repository")
		return nil, fmt.Errorf("test not found with ID %d: %w", testID, err)
	}

	resp := dto.TestResponseDTO{
		ID:          test.ID,
		Title:       test.Title,
		Description: test.Description,
		ScoringMode: string(test.ScoringMode),
		CreatedAt:   test.CreatedAt,
	}
	for i := range test.Questions {
		resp.Questions = append(resp.Questions, questionView(&test.Questions[i]))
	}
	return &resp, nil
}

func questionView(q *model.Question) dto.QuestionResponseDTO {
	view := dto.QuestionResponseDTO{
		ID:          q.ID,
		TestID:      q.TestID,
		Prompt:      q.Prompt,
		Difficulty:  string(q.Difficulty),
		OrderInTest: q.OrderInTest,
	}
	for _, opt := range q.Options {
		view.Options = append(view.Options, dto.OptionDTO{Key: opt.Key, Text: opt.Text})
	}
	return view
}
