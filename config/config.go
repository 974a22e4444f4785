package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server         Server
	Database       Database
	Scoring        Scoring
	Recommendation Recommendation
	Cluster        Cluster
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Scoring holds the tunables of the test scoring engine.
type Scoring struct {
	PassThreshold         float64 // percentage at or above which an attempt passes
	MinSecondsPerQuestion int     // submissions faster than this per question are rejected
	MaxSecondsPerQuestion int     // submissions slower than this per question are rejected
}

type Recommendation struct {
	MinOverall       float64 // recommendations scoring below this are discarded entirely
	DefaultLimit     int
	BatchConcurrency int
}

type Cluster struct {
	ModelPath string
	Watch     bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SCORING_PASS_THRESHOLD", 70.0)
	viper.SetDefault("SCORING_MIN_SECONDS_PER_QUESTION", 2)
	viper.SetDefault("SCORING_MAX_SECONDS_PER_QUESTION", 600)
	viper.SetDefault("RECOMMENDATION_MIN_OVERALL", 0.4)
	viper.SetDefault("RECOMMENDATION_DEFAULT_LIMIT", 20)
	viper.SetDefault("RECOMMENDATION_BATCH_CONCURRENCY", 8)
	viper.SetDefault("CLUSTER_MODEL_WATCH", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Scoring.PassThreshold = viper.GetFloat64("SCORING_PASS_THRESHOLD")
	config.Scoring.MinSecondsPerQuestion = viper.GetInt("SCORING_MIN_SECONDS_PER_QUESTION")
	config.Scoring.MaxSecondsPerQuestion = viper.GetInt("SCORING_MAX_SECONDS_PER_QUESTION")

	config.Recommendation.MinOverall = viper.GetFloat64("RECOMMENDATION_MIN_OVERALL")
	config.Recommendation.DefaultLimit = viper.GetInt("RECOMMENDATION_DEFAULT_LIMIT")
	config.Recommendation.BatchConcurrency = viper.GetInt("RECOMMENDATION_BATCH_CONCURRENCY")

	config.Cluster.ModelPath = viper.GetString("CLUSTER_MODEL_PATH")
	config.Cluster.Watch = viper.GetBool("CLUSTER_MODEL_WATCH")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
