package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
)

// ProfileController ingests candidate and job profiles. Profiles are owned
// upstream; these endpoints exist so the engine can be fed and operated
// standalone.
type ProfileController struct {
	candidateRepo repository.CandidateRepository
	jobRepo       repository.JobRepository
}

func NewProfileController(cr repository.CandidateRepository, jr repository.JobRepository) *ProfileController {
	return &ProfileController{candidateRepo: cr, jobRepo: jr}
}

// CreateCandidate godoc
// @Summary (Admin) Register a candidate profile
// @Tags Admin
// @Accept json
// @Produce json
// @Param candidate body dto.CandidateProfileCreateDTO true "Candidate profile"
// @Success 201 {object} model.CandidateProfile
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/candidates [post]
func (c *ProfileController) CreateCandidate(ctx *gin.Context) {
	var req dto.CandidateProfileCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	candidate := model.CandidateProfile{
		UserID:          req.UserID,
		FullName:        req.FullName,
		Skills:          req.Skills,
		City:            req.City,
		Country:         req.Country,
		RemoteOK:        req.RemoteOK,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		ExperienceLevel: model.ExperienceLevel(req.ExperienceLevel),
	}
	if err := c.candidateRepo.Create(&candidate); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("CreateCandidate: failed to persist profile")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create candidate profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, candidate)
}

// CreateJob godoc
// @Summary (Admin) Register a job profile
// @Tags Admin
// @Accept json
// @Produce json
// @Param job body dto.JobProfileCreateDTO true "Job profile"
// @Success 201 {object} model.JobProfile
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/jobs [post]
func (c *ProfileController) CreateJob(ctx *gin.Context) {
	var req dto.JobProfileCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	postedAt := time.Now()
	if req.PostedAt != nil {
		postedAt = *req.PostedAt
	}
	job := model.JobProfile{
		Title:           req.Title,
		Company:         req.Company,
		RequiredSkills:  req.RequiredSkills,
		PreferredSkills: req.PreferredSkills,
		City:            req.City,
		Country:         req.Country,
		Remote:          req.Remote,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Seniority:       model.ExperienceLevel(req.Seniority),
		PostedAt:        postedAt,
	}
	if err := c.jobRepo.Create(&job); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateJob: failed to persist profile")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create job profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, job)
}
