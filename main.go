package main

import (
	"context"
	"log"
	"net/http"

	api "carecompanion-backend/cmd/api"
	authdomain "carecompanion-backend/internal/auth/domain"
	authRepo "carecompanion-backend/internal/auth/repository"
	authUsecase "carecompanion-backend/internal/auth/usecase"
	moodDelivery "carecompanion-backend/internal/mood/delivery"
	mooddomain "carecompanion-backend/internal/mood/domain"
	moodRepo "carecompanion-backend/internal/mood/repository"
	moodUsecase "carecompanion-backend/internal/mood/usecase"
	notificationDelivery "carecompanion-backend/internal/notification/delivery"
	notificationdomain "carecompanion-backend/internal/notification/domain"
	notificationRepo "carecompanion-backend/internal/notification/repository"
	notificationUsecase "carecompanion-backend/internal/notification/usecase"
	questionDelivery "carecompanion-backend/internal/question/delivery"
	questiondomain "carecompanion-backend/internal/question/domain"
	questionRepo "carecompanion-backend/internal/question/repository"
	"carecompanion-backend/internal/question/seed"
	questionUsecase "carecompanion-backend/internal/question/usecase"
	"carecompanion-backend/pkg/ai"
	"carecompanion-backend/pkg/config"
	"carecompanion-backend/pkg/database"
	"carecompanion-backend/pkg/logger"
	"carecompanion-backend/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer appLog.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		appLog.Fatal("failed to connect to database", "error", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &questiondomain.Question{}, &mooddomain.MoodEntry{}, &notificationdomain.Notification{}); err != nil {
		appLog.Fatal("failed to migrate database", "error", err)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	rec := metrics.New(cfg.MetricsEnabled, reg)
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	questionRepository := questionRepo.NewGormQuestionRepository(db)
	moodRepository := moodRepo.NewGormMoodRepository(db)
	notificationRepository := notificationRepo.NewGormNotificationRepository(db)

	// AI mood analysis
	analyzer, ollamaClient := ai.NewMoodAnalyzerFromConfig(cfg, appLog, rec)
	appLog.Info("mood analyzer initialized", "ollama_base_url", cfg.OllamaBaseURL, "model", cfg.OllamaModel, "timeout", cfg.OllamaTimeout)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	questionUsecaseInstance := questionUsecase.NewCachedQuestionUsecase(
		questionUsecase.NewQuestionUsecase(questionRepository, cfg.DailyQuestionCount),
		cfg.QuestionCacheTTL,
	)
	alertDispatcher := notificationUsecase.NewAlertDispatcher(notificationRepository, userRepo, appLog, rec)
	notificationUsecaseInstance := notificationUsecase.NewNotificationUsecase(notificationRepository, userRepo)
	moodUsecaseInstance := moodUsecase.NewMoodUsecase(analyzer, moodRepository, userRepo, alertDispatcher, cfg.DayLocation(), appLog)

	// Seed the question bank on first start
	defaults, err := seed.Questions()
	if err != nil {
		appLog.Fatal("failed to load default questions", "error", err)
	}
	if n, err := questionUsecaseInstance.SeedIfEmpty(context.Background(), defaults); err != nil {
		appLog.Error("failed to seed question bank", "error", err, "inserted", n)
	} else if n > 0 {
		appLog.Info("seeded question bank", "questions", n)
	}

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, api.Routes{
		Questions:     questionDelivery.NewQuestionHandler(questionUsecaseInstance),
		Mood:          moodDelivery.NewMoodHandler(moodUsecaseInstance),
		Notifications: notificationDelivery.NewNotificationHandler(notificationUsecaseInstance),
		Settings:      api.NewSettingsHandler(ollamaClient),
		Metrics:       metricsHandler,
	}, appLog, cfg.Env)

	// Start server
	appLog.Info("server starting", "port", cfg.Port, "day_timezone", cfg.DayLocation().String())
	if err := handler.Start(":" + cfg.Port); err != nil {
		appLog.Fatal("failed to start server", "error", err)
	}
}
