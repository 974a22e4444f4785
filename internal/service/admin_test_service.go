package service

import (
	"fmt"

	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// AdminTestService authors tests. It enforces the invariant that a test's
// questions are homogeneous in scoring mode: standard questions carry exactly
// a correct option, option-weighted questions carry exactly a score map.
type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	CreateSkillTestMapping(req dto.SkillTestMappingCreateDTO) (*model.SkillTestMapping, error)
}

type adminTestService struct {
	testRepo    repository.TestRepository
	mappingRepo repository.SkillTestMappingRepository
}

func NewAdminTestService(testRepo repository.TestRepository, mappingRepo repository.SkillTestMappingRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo, mappingRepo: mappingRepo}
}

func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	mode := model.ScoringMode(req.ScoringMode)
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown scoring mode %q", req.ScoringMode)
	}

	orderSeen := make(map[int]bool)
	questions := make([]model.Question, 0, len(req.Questions))
	for _, qDto := range req.Questions {
		if orderSeen[qDto.OrderInTest] {
			return nil, fmt.Errorf("duplicate order_in_test %d found in questions", qDto.OrderInTest)
		}
		orderSeen[qDto.OrderInTest] = true

		question, err := buildQuestion(mode, qDto)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	testModel := model.Test{
		Title:       req.Title,
		Description: req.Description,
		ScoringMode: mode,
		Questions:   questions,
	}
	if err := s.testRepo.Create(&testModel); err != nil {
		log.Error().Err(err).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}

	created, err := s.testRepo.FindByIDWithQuestions(testModel.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload created test: %w", err)
	}
	resp := dto.TestResponseDTO{
		ID:          created.ID,
		Title:       created.Title,
		Description: created.Description,
		ScoringMode: string(created.ScoringMode),
		CreatedAt:   created.CreatedAt,
	}
	for i := range created.Questions {
		resp.Questions = append(resp.Questions, questionView(&created.Questions[i]))
	}
	return &resp, nil
}

func buildQuestion(mode model.ScoringMode, qDto dto.QuestionCreateDTO) (model.Question, error) {
	keys := make(map[string]bool, len(qDto.Options))
	options := make([]model.Option, 0, len(qDto.Options))
	for _, opt := range qDto.Options {
		if opt.Key == "" {
			return model.Question{}, fmt.Errorf("question %d has an option with an empty key", qDto.OrderInTest)
		}
		if keys[opt.Key] {
			return model.Question{}, fmt.Errorf("question %d has duplicate option key %q", qDto.OrderInTest, opt.Key)
		}
		keys[opt.Key] = true
		options = append(options, model.Option{Key: opt.Key, Text: opt.Text})
	}

	question := model.Question{
		Prompt:      qDto.Prompt,
		Difficulty:  model.Difficulty(qDto.Difficulty),
		OrderInTest: qDto.OrderInTest,
		Options:     datatypes.NewJSONSlice(options),
	}

	switch mode {
	case model.ScoringModeStandard:
		if len(qDto.OptionScores) > 0 {
			return model.Question{}, fmt.Errorf("question %d carries option scores on a standard test", qDto.OrderInTest)
		}
		if qDto.CorrectOption == nil || !keys[*qDto.CorrectOption] {
			return model.Question{}, fmt.Errorf("question %d needs a correct_option naming one of its options", qDto.OrderInTest)
		}
		question.CorrectOption = qDto.CorrectOption
	case model.ScoringModeOptionWeighted:
		if qDto.CorrectOption != nil {
			return model.Question{}, fmt.Errorf("question %d carries a correct_option on an option-weighted test", qDto.OrderInTest)
		}
		if len(qDto.OptionScores) != len(qDto.Options) {
			return model.Question{}, fmt.Errorf("question %d needs a score for each of its %d options", qDto.OrderInTest, len(qDto.Options))
		}
		for key := range qDto.OptionScores {
			if !keys[key] {
				return model.Question{}, fmt.Errorf("question %d scores unknown option %q", qDto.OrderInTest, key)
			}
		}
		question.OptionScores = datatypes.NewJSONType(qDto.OptionScores)
	}
	return question, nil
}

func (s *adminTestService) CreateSkillTestMapping(req dto.SkillTestMappingCreateDTO) (*model.SkillTestMapping, error) {
	if _, err := s.testRepo.FindByID(req.TestID); err != nil {
		return nil, fmt.Errorf("test not found with ID %d: %w", req.TestID, err)
	}
	weight := req.Weight
	if weight <= 0 {
		weight = 1
	}
	mapping := model.SkillTestMapping{
		Skill:  normalizeSkill(req.Skill),
		TestID: req.TestID,
		Weight: weight,
	}
	if err := s.mappingRepo.Create(&mapping); err != nil {
		log.Error().Err(err).Msg("Failed to create skill-test mapping")
		return nil, fmt.Errorf("database error creating skill-test mapping: %w", err)
	}
	return &mapping, nil
}
