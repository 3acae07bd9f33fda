package api

import (
	"time"

	authDelivery "carecompanion-backend/internal/auth/delivery"
	authUsecase "carecompanion-backend/internal/auth/usecase"
	"carecompanion-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	routes      Routes
	log         *logger.Logger
	mode        string
}

func NewHandler(authUc authUsecase.AuthUsecase, routes Routes, log *logger.Logger, env string) *Handler {
	mode := gin.DebugMode
	switch env {
	case "production", "prod":
		mode = gin.ReleaseMode
	case "test":
		mode = gin.TestMode
	}
	return &Handler{
		authUsecase: authUc,
		routes:      routes,
		log:         log.With("component", "http"),
		mode:        mode,
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(h.mode)
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "Origin", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	SetupRoutes(r, h.authUsecase, h.routes)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}

// requestLogger logs method, route and status. Bodies are never logged.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.log.Debug("request",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"user_id", c.GetString(authDelivery.ContextUserID),
		)
	}
}
