package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
	scoringService   service.ScoringService
}

func NewAdminTestController(ats service.AdminTestService, ss service.ScoringService) *AdminTestController {
	return &AdminTestController{adminTestService: ats, scoringService: ss}
}

// CreateTest godoc
// @Summary (Admin) Create a new test with its questions
// @Description Creates a test. All questions must follow the test's scoring mode: standard questions name a correct option, option-weighted questions score every option.
// @Tags Admin
// @Accept json
// @Produce json
// @Param test body dto.TestCreateDTO true "Test definition"
// @Success 201 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	created, err := c.adminTestService.CreateTest(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// CreateSkillTestMapping godoc
// @Summary (Admin) Map a skill to a technical test
// @Tags Admin
// @Accept json
// @Produce json
// @Param mapping body dto.SkillTestMappingCreateDTO true "Skill to test mapping"
// @Success 201 {object} model.SkillTestMapping
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/skill-test-mappings [post]
func (c *AdminTestController) CreateSkillTestMapping(ctx *gin.Context) {
	var req dto.SkillTestMappingCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	mapping, err := c.adminTestService.CreateSkillTestMapping(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, mapping)
}

// RecalculateScore godoc
// @Summary (Admin) Recalculate the score of a submission
// @Description Re-runs the scoring algorithm against the stored answers and atomically replaces the score. Idempotent; used after correcting scoring configuration.
// @Tags Admin
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} dto.ScoreResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/submissions/{submission_id}/recalculate [post]
func (c *AdminTestController) RecalculateScore(ctx *gin.Context) {
	raw := ctx.Param("submission_id")
	submissionID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Submission ID format"})
		return
	}

	score, err := c.scoringService.Recalculate(uint(submissionID))
	if err != nil {
		log.Warn().Err(err).Uint64("submissionID", submissionID).Msg("RecalculateScore: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.NewScoreResponse(score))
}
