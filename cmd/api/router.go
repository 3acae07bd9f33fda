package api

import (
	"net/http"

	"carecompanion-backend/internal/auth/delivery"
	authdomain "carecompanion-backend/internal/auth/domain"
	authUsecase "carecompanion-backend/internal/auth/usecase"
	moodDelivery "carecompanion-backend/internal/mood/delivery"
	notificationDelivery "carecompanion-backend/internal/notification/delivery"
	questionDelivery "carecompanion-backend/internal/question/delivery"

	"github.com/gin-gonic/gin"
)

// Routes groups the handlers mounted under /api.
type Routes struct {
	Questions     *questionDelivery.QuestionHandler
	Mood          *moodDelivery.MoodHandler
	Notifications *notificationDelivery.NotificationHandler
	Settings      *SettingsHandler
	// Metrics is served at /metrics when set
	Metrics http.Handler
}

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, routes Routes) {
	requireAuth := delivery.AuthMiddleware(authUsecase)
	elderlyOnly := delivery.RequireRole(authdomain.RoleElderly)
	caretakerOnly := delivery.RequireRole(authdomain.RoleCaretaker)

	if routes.Metrics != nil {
		r.GET("/metrics", gin.WrapH(routes.Metrics))
	}

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Question routes
		questions := api.Group("/questions")
		{
			questions.GET("/daily", routes.Questions.GetDailyQuestions)
			questions.GET("", requireAuth, caretakerOnly, routes.Questions.GetAllQuestions)
		}

		// Mood routes (protected)
		mood := api.Group("/mood")
		mood.Use(requireAuth)
		{
			mood.POST("/analyze", elderlyOnly, routes.Mood.AnalyzeMood)
			mood.POST("/entry", elderlyOnly, routes.Mood.SaveMoodEntry)
			mood.GET("/history/:userId", routes.Mood.GetMoodHistory)
			mood.GET("/checkin/:userId", routes.Mood.GetCheckIn)
		}

		// Notification routes (caretakers only)
		notifications := api.Group("/notifications")
		notifications.Use(requireAuth, caretakerOnly)
		{
			notifications.GET("", routes.Notifications.GetNotifications)
			notifications.PUT("/read-all", routes.Notifications.MarkAllAsRead)
			notifications.PUT("/:id/read", routes.Notifications.MarkAsRead)
		}

		// Settings routes - read-only view of the AI endpoint (caretakers only)
		settings := api.Group("/settings")
		settings.Use(requireAuth, caretakerOnly)
		{
			settings.GET("/ollama", routes.Settings.GetOllamaSettings)
			settings.POST("/ollama/test", routes.Settings.TestOllamaConnection)
		}
	}
}
