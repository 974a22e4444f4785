package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
)

type RecommendationController struct {
	recommendationService service.RecommendationService
}

func NewRecommendationController(rs service.RecommendationService) *RecommendationController {
	return &RecommendationController{recommendationService: rs}
}

// GetRecommendations godoc
// @Summary Get ranked job recommendations for a candidate
// @Description Recomputes and returns the candidate's ranked recommendations with sub-score breakdowns and explanations. Matches under the quality threshold are excluded entirely.
// @Tags Recommendations
// @Produce json
// @Param candidate_id path int true "Candidate ID"
// @Param limit query int false "Maximum number of recommendations"
// @Success 200 {array} dto.RecommendationDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /candidates/{candidate_id}/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	candidateID, err := parseUintParam(ctx, "candidate_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Candidate ID format"})
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = parsed
	}

	recommendations, err := c.recommendationService.RecommendForCandidate(ctx.Request.Context(), candidateID, limit)
	if err != nil {
		log.Warn().Err(err).Uint("candidateID", candidateID).Msg("GetRecommendations: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp := make([]dto.RecommendationDTO, 0, len(recommendations))
	for i := range recommendations {
		resp = append(resp, dto.NewRecommendationResponse(&recommendations[i]))
	}
	ctx.JSON(http.StatusOK, resp)
}
