package dto

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
// Exactly one of CorrectOption / OptionScores applies depending on the test's
// scoring mode.
type QuestionCreateDTO struct {
	Prompt        string         `json:"prompt" binding:"required"`
	Difficulty    string         `json:"difficulty" binding:"required,oneof=easy medium hard"`
	OrderInTest   int            `json:"order_in_test" binding:"required,min=1"`
	Options       []OptionDTO    `json:"options" binding:"required,min=2,dive"`
	CorrectOption *string        `json:"correct_option,omitempty"`
	OptionScores  map[string]int `json:"option_scores,omitempty"`
}

// TestCreateDTO is for admin to create a new test with all its questions.
type TestCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	ScoringMode string              `json:"scoring_mode" binding:"required,oneof=standard option_weighted"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type SkillTestMappingCreateDTO struct {
	Skill  string  `json:"skill" binding:"required"`
	TestID uint    `json:"test_id" binding:"required"`
	Weight float64 `json:"weight"`
}

// WeightsUpdateDTO replaces the tunable recommendation weight set. Weights
// need not sum to 1.
type WeightsUpdateDTO struct {
	SkillMatch    float64 `json:"skill_match" binding:"min=0"`
	TechnicalTest float64 `json:"technical_test" binding:"min=0"`
	Experience    float64 `json:"experience" binding:"min=0"`
	Salary        float64 `json:"salary" binding:"min=0"`
	Location      float64 `json:"location" binding:"min=0"`
	ClusterFit    float64 `json:"cluster_fit" binding:"min=0"`
	Employability float64 `json:"employability" binding:"min=0"`
	MinOverall    float64 `json:"min_overall" binding:"min=0,max=1"`
}

type WeightsResponseDTO struct {
	SkillMatch    float64 `json:"skill_match"`
	TechnicalTest float64 `json:"technical_test"`
	Experience    float64 `json:"experience"`
	Salary        float64 `json:"salary"`
	Location      float64 `json:"location"`
	ClusterFit    float64 `json:"cluster_fit"`
	Employability float64 `json:"employability"`
	MinOverall    float64 `json:"min_overall"`
}

type RebuildResponseDTO struct {
	StoredRecommendations int `json:"stored_recommendations"`
}
