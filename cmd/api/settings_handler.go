package api

import (
	"context"
	"net/http"

	"carecompanion-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// OllamaProber is the part of the AI client the settings API needs.
type OllamaProber interface {
	Config() ai.OllamaConfig
	Ping(ctx context.Context) error
}

// SettingsHandler exposes the text-generation endpoint config. The config is
// fixed at startup; changing it means restarting with new environment values.
type SettingsHandler struct {
	ollama OllamaProber
}

func NewSettingsHandler(ollama OllamaProber) *SettingsHandler {
	return &SettingsHandler{ollama: ollama}
}

// GetOllamaSettings returns current Ollama configuration
// GET /api/settings/ollama
func (h *SettingsHandler) GetOllamaSettings(c *gin.Context) {
	cfg := h.ollama.Config()
	c.JSON(http.StatusOK, gin.H{
		"ollama_base_url": cfg.BaseURL,
		"ollama_model":    cfg.Model,
		"timeout_seconds": cfg.Timeout.Seconds(),
		"temperature":     cfg.Temperature,
		"num_predict":     cfg.NumPredict,
	})
}

// TestOllamaConnection tests if the configured Ollama server is reachable
// POST /api/settings/ollama/test
func (h *SettingsHandler) TestOllamaConnection(c *gin.Context) {
	baseURL := h.ollama.Config().BaseURL
	if err := h.ollama.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected":       false,
			"ollama_base_url": baseURL,
			"error":           err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":       true,
		"ollama_base_url": baseURL,
	})
}
