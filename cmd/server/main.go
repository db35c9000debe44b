package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	badgehandlers "github.com/architect/francais-pro/internal/badges/handlers"
	badgemodels "github.com/architect/francais-pro/internal/badges/models"
	"github.com/architect/francais-pro/internal/common/database"
	commonHandlers "github.com/architect/francais-pro/internal/common/handlers"
	"github.com/architect/francais-pro/internal/common/health"
	"github.com/architect/francais-pro/internal/common/middleware"
	exhandlers "github.com/architect/francais-pro/internal/exercises/handlers"
	exmodels "github.com/architect/francais-pro/internal/exercises/models"
	exservices "github.com/architect/francais-pro/internal/exercises/services"
	"github.com/architect/francais-pro/internal/llm"
	userhandlers "github.com/architect/francais-pro/internal/users/handlers"
	usermodels "github.com/architect/francais-pro/internal/users/models"
	userservices "github.com/architect/francais-pro/internal/users/services"
	"github.com/architect/francais-pro/pkg/config"
	"github.com/architect/francais-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// SQLite for development, PostgreSQL for production
	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(
		&usermodels.User{},
		&usermodels.Session{},
		&usermodels.ModuleProgress{},
		&exmodels.ExerciseRecord{},
		&exmodels.UserSkill{},
		&badgemodels.UserBadge{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	provider := buildProvider(cfg)
	breaker := exservices.NewBreaker(cfg.AI.BreakerThreshold, cfg.AI.BreakerCooldown)
	generator := exservices.NewGenerator(provider, breaker, cfg.AI)
	exerciseHandler := exhandlers.NewExerciseHandler(generator)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	var aiLive func() bool
	if provider != nil {
		aiLive = breaker.Available
	}
	healthChecker := health.NewChecker(database.GetDB(), "1.0.0", aiLive)
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)
	router.GET("/health/detailed", healthHandler.Detailed)

	authRequired := middleware.AuthRequired(userservices.ValidateSession)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", userhandlers.Register)
			auth.POST("/login", userhandlers.Login)
			auth.POST("/logout", authRequired, userhandlers.Logout)
		}

		exercises := api.Group("/exercises", authRequired)
		{
			exercises.POST("/generate", exerciseHandler.Generate)
			exercises.POST("/series", exerciseHandler.GenerateSeries)
			exercises.POST("/submit", exerciseHandler.Submit)
		}

		me := api.Group("/users/me", authRequired)
		{
			me.GET("", userhandlers.GetProfile)
			me.PUT("", userhandlers.UpdateProfile)
			me.DELETE("", userhandlers.DeleteAccount)
			me.GET("/stats", userhandlers.GetStatistics)
			me.GET("/progress", userhandlers.GetProgress)
			me.GET("/skills", userhandlers.GetSkills)
			me.GET("/activity", userhandlers.GetWeeklyActivity)
			me.GET("/errors", userhandlers.GetRecentErrors)
			me.POST("/reset", userhandlers.ResetProgress)
		}

		api.GET("/badges", authRequired, badgehandlers.GetBadges)
	}

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("env", cfg.Server.Env),
		zap.Bool("live_generation", provider != nil))

	if err := router.Run(addr); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}

// buildProvider returns the Gemini provider, or nil when no API key is
// configured. A nil provider runs the engine in bank-only mode.
func buildProvider(cfg *config.Config) llm.Provider {
	if cfg.AI.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, serving bank exercises only")
		return nil
	}

	provider, err := llm.NewGeminiProvider(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.Model)
	if err != nil {
		logger.Error("failed to initialize Gemini provider, serving bank exercises only", zap.Error(err))
		return nil
	}
	return provider
}
