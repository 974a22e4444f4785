package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/database"
	_ "github.com/lshigami/Caracal/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Caracal/internal/controller/admin"
	userctrl "github.com/lshigami/Caracal/internal/controller/user"
	"github.com/lshigami/Caracal/internal/logger"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Caracal Scoring & Recommendation API
// @version 1.0
// @description Difficulty-weighted test scoring and candidate-job recommendation engine.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewSubmissionRepository,
			repository.NewScoreRepository,
			repository.NewCandidateRepository,
			repository.NewJobRepository,
			repository.NewSkillTestMappingRepository,
			repository.NewRecommendationRepository,
			repository.NewRecommendationWeightsRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoringService,
			service.NewUserTestService,
			service.NewAdminTestService,
			service.NewSkillMatchService,
			service.NewTechnicalScoreService,
			service.NewFitService,
			service.NewClusterService,
			service.NewRecommendationService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewUserTestController,
			userctrl.NewRecommendationController,
			adminctrl.NewAdminTestController,
			adminctrl.NewRecommendationAdminController,
			adminctrl.NewProfileController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(WatchClusterModel),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Request logging through the global zerolog instance
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userTestCtrl *userctrl.UserTestController,
	recommendationCtrl *userctrl.RecommendationController,
	adminTestCtrl *adminctrl.AdminTestController,
	recommendationAdminCtrl *adminctrl.RecommendationAdminController,
	profileCtrl *adminctrl.ProfileController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/tests", adminTestCtrl.CreateTest)
		adminAPIGroup.POST("/skill-test-mappings", adminTestCtrl.CreateSkillTestMapping)
		adminAPIGroup.POST("/submissions/:submission_id/recalculate", adminTestCtrl.RecalculateScore)
		adminAPIGroup.GET("/recommendation-weights", recommendationAdminCtrl.GetWeights)
		adminAPIGroup.PUT("/recommendation-weights", recommendationAdminCtrl.UpdateWeights)
		adminAPIGroup.POST("/recommendations/rebuild", recommendationAdminCtrl.RebuildRecommendations)
		adminAPIGroup.GET("/candidates/:candidate_id/recommendations", recommendationAdminCtrl.GetStoredRecommendations)
		adminAPIGroup.POST("/candidates", profileCtrl.CreateCandidate)
		adminAPIGroup.POST("/jobs", profileCtrl.CreateJob)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/tests", userTestCtrl.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", userTestCtrl.GetTestDetails)
		userAPIGroup.POST("/tests/:test_id/submissions", userTestCtrl.SubmitTest)
		userAPIGroup.GET("/submissions/:submission_id/score", userTestCtrl.GetSubmissionScore)
		userAPIGroup.GET("/candidates/:candidate_id/recommendations", recommendationCtrl.GetRecommendations)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Caracal API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// WatchClusterModel ties the cluster model file watcher to the application
// lifecycle so a retrained artifact is picked up without a restart.
func WatchClusterModel(lc fx.Lifecycle, cfg *config.Config, cluster service.ClusterService) {
	if cfg.Cluster.ModelPath == "" || !cfg.Cluster.Watch {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return cluster.StartWatching()
		},
		OnStop: func(ctx context.Context) error {
			cluster.StopWatching()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Test{},
		&model.Question{},
		&model.Submission{},
		&model.Score{},
		&model.CandidateProfile{},
		&model.JobProfile{},
		&model.SkillTestMapping{},
		&model.RecommendationWeights{},
		&model.Recommendation{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
