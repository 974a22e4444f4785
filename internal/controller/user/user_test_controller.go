package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService service.UserTestService
	scoringService  service.ScoringService
}

func NewUserTestController(uts service.UserTestService, ss service.ScoringService) *UserTestController {
	return &UserTestController{
		userTestService: uts,
		scoringService:  ss,
	}
}

// GetAllTests godoc
// @Summary List all available tests
// @Description Get a list of tests with question counts.
// @Tags Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary Get details of a specific test
// @Description Get full details of a test, including its questions (without answer keys).
// @Tags Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, err := parseUintParam(ctx, "test_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return
	}
	testDetails, err := c.userTestService.GetTestDetails(testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("GetTestDetails: test not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// SubmitTest godoc
// @Summary Submit answers for a test and receive the score
// @Description Scores a complete answer set. At most one scored submission exists per user and test; a repeat submit returns the prior result as a conflict payload.
// @Tags Tests
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param submission body dto.SubmissionSubmitDTO true "User, answers and timing"
// @Success 201 {object} dto.ScoreResponseDTO
// @Failure 400 {object} dto.ValidationErrorResponse "Incomplete answers or implausible timing"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.DuplicateSubmissionResponse "Already scored"
// @Router /tests/{test_id}/submissions [post]
func (c *UserTestController) SubmitTest(ctx *gin.Context) {
	testID, err := parseUintParam(ctx, "test_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return
	}

	var req dto.SubmissionSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	score, err := c.scoringService.Score(req.UserID, testID, req.Answers, req.TimeTakenSeconds)
	if err != nil {
		c.renderScoringError(ctx, testID, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewScoreResponse(score))
}

func (c *UserTestController) renderScoringError(ctx *gin.Context, testID uint, err error) {
	var incomplete *service.IncompleteSubmissionError
	var timing *service.ImplausibleTimingError
	var duplicate *service.DuplicateSubmissionError
	var configErr *service.ScoringConfigurationError

	switch {
	case errors.As(err, &incomplete):
		ctx.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message:            "Submission is incomplete",
			Field:              "answers",
			Reason:             err.Error(),
			MissingQuestionIDs: incomplete.MissingQuestionIDs,
		})
	case errors.As(err, &timing):
		ctx.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "Submission timing is implausible",
			Field:   "time_taken_seconds",
			Reason:  err.Error(),
		})
	case errors.As(err, &duplicate):
		ctx.JSON(http.StatusConflict, dto.DuplicateSubmissionResponse{
			Message:      "Test already scored for this user",
			SubmissionID: duplicate.SubmissionID,
			ScoreID:      duplicate.ScoreID,
			Percentage:   duplicate.Percentage,
			SubmittedAt:  duplicate.SubmittedAt,
		})
	case errors.As(err, &configErr):
		log.Error().Err(err).Uint("testID", testID).Msg("SubmitTest: scoring configuration error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Test is not scorable", Details: []string{err.Error()}})
	default:
		log.Error().Err(err).Uint("testID", testID).Msg("SubmitTest: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	}
}

// GetSubmissionScore godoc
// @Summary Get the score of a submission
// @Tags Tests
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} dto.ScoreResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/{submission_id}/score [get]
func (c *UserTestController) GetSubmissionScore(ctx *gin.Context) {
	submissionID, err := parseUintParam(ctx, "submission_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Submission ID format"})
		return
	}
	score, err := c.scoringService.GetBySubmission(submissionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.NewScoreResponse(score))
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}
