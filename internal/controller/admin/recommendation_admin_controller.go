package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
)

type RecommendationAdminController struct {
	recommendationService service.RecommendationService
	weightsRepo           repository.RecommendationWeightsRepository
}

func NewRecommendationAdminController(rs service.RecommendationService, wr repository.RecommendationWeightsRepository) *RecommendationAdminController {
	return &RecommendationAdminController{recommendationService: rs, weightsRepo: wr}
}

// GetWeights godoc
// @Summary (Admin) Get the current recommendation weight set
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.WeightsResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/recommendation-weights [get]
func (c *RecommendationAdminController) GetWeights(ctx *gin.Context) {
	weights, err := c.weightsRepo.Get()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load recommendation weights"})
		return
	}

	var resp dto.WeightsResponseDTO
	if err := copier.Copy(&resp, &weights); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to map recommendation weights"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateWeights godoc
// @Summary (Admin) Replace the recommendation weight set
// @Description Weights are applied as-is in the next computation; they are not renormalized to sum to 1. Stored recommendations keep their old scores until a rebuild.
// @Tags Admin
// @Accept json
// @Produce json
// @Param weights body dto.WeightsUpdateDTO true "New weight set"
// @Success 200 {object} dto.WeightsResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/recommendation-weights [put]
func (c *RecommendationAdminController) UpdateWeights(ctx *gin.Context) {
	var req dto.WeightsUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	weights, err := c.weightsRepo.Get()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load recommendation weights"})
		return
	}

	if err := copier.Copy(&weights, &req); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to map recommendation weights"})
		return
	}
	if err := c.weightsRepo.Update(&weights); err != nil {
		log.Error().Err(err).Msg("UpdateWeights: failed to persist weight set")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save recommendation weights"})
		return
	}

	var resp dto.WeightsResponseDTO
	if err := copier.Copy(&resp, &weights); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to map recommendation weights"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStoredRecommendations godoc
// @Summary (Admin) Inspect a candidate's stored recommendations
// @Description Reads back what the last compute or rebuild persisted for the candidate, ranked by overall score, without triggering a recomputation.
// @Tags Admin
// @Produce json
// @Param candidate_id path int true "Candidate ID"
// @Param limit query int false "Maximum number of recommendations"
// @Success 200 {array} dto.RecommendationDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/candidates/{candidate_id}/recommendations [get]
func (c *RecommendationAdminController) GetStoredRecommendations(ctx *gin.Context) {
	raw := ctx.Param("candidate_id")
	candidateID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Candidate ID format"})
		return
	}

	limit := 0
	if rawLimit := ctx.Query("limit"); rawLimit != "" {
		parsed, parseErr := strconv.Atoi(rawLimit)
		if parseErr != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = parsed
	}

	recommendations, err := c.recommendationService.StoredForCandidate(uint(candidateID), limit)
	if err != nil {
		log.Warn().Err(err).Uint64("candidateID", candidateID).Msg("GetStoredRecommendations: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp := make([]dto.RecommendationDTO, 0, len(recommendations))
	for i := range recommendations {
		resp = append(resp, dto.NewRecommendationResponse(&recommendations[i]))
	}
	ctx.JSON(http.StatusOK, resp)
}

// RebuildRecommendations godoc
// @Summary (Admin) Rebuild recommendations for every candidate
// @Description Recomputes and upserts recommendations for all candidates with bounded concurrency. Returns the number of stored recommendations.
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.RebuildResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/recommendations/rebuild [post]
func (c *RecommendationAdminController) RebuildRecommendations(ctx *gin.Context) {
	stored, err := c.recommendationService.RebuildAll(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("RebuildRecommendations: rebuild failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Recommendation rebuild failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.RebuildResponseDTO{StoredRecommendations: stored})
}
