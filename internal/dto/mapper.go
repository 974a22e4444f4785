package dto

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/Caracal/internal/model"
)

// NewScoreResponse maps a scored result onto its response shape.
func NewScoreResponse(score *model.Score) ScoreResponseDTO {
	resp := ScoreResponseDTO{
		ID:                    score.ID,
		SubmissionID:          score.SubmissionID,
		UserID:                score.UserID,
		TestID:                score.TestID,
		RawScore:              score.RawScore,
		MaxPossibleScore:      score.MaxPossible,
		Percentage:            score.Percentage,
		GradeLetter:           score.GradeLetter,
		Passed:                score.Passed,
		AvgSecondsPerQuestion: score.AvgSecondsPerQuestion,
		CreatedAt:             score.CreatedAt,
	}
	breakdown := score.Breakdown.Data()
	copier.Copy(&resp.Breakdown, &breakdown)
	return resp
}

// NewRecommendationResponse maps a stored recommendation onto its response
// shape. The preloaded job supplies the display fields.
func NewRecommendationResponse(rec *model.Recommendation) RecommendationDTO {
	resp := RecommendationDTO{
		JobID:         rec.JobID,
		JobTitle:      rec.Job.Title,
		Company:       rec.Job.Company,
		Overall:       rec.Overall,
		MatchedSkills: rec.MatchedSkills,
		MissingSkills: rec.MissingSkills,
		Explanations:  rec.Explanations,
		ComputedAt:    rec.ComputedAt,
	}
	sub := rec.SubScores.Data()
	copier.Copy(&resp.SubScores, &sub)
	if resp.MatchedSkills == nil {
		resp.MatchedSkills = []string{}
	}
	if resp.MissingSkills == nil {
		resp.MissingSkills = []string{}
	}
	return resp
}
