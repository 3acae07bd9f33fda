package ai

import (
	"carecompanion-backend/pkg/config"
	"carecompanion-backend/pkg/logger"
	"carecompanion-backend/pkg/metrics"
)

// OllamaConfigFrom maps application config onto the client config.
func OllamaConfigFrom(cfg *config.Config) OllamaConfig {
	return OllamaConfig{
		BaseURL:     cfg.OllamaBaseURL,
		Model:       cfg.OllamaModel,
		Timeout:     cfg.OllamaTimeout,
		Temperature: cfg.OllamaTemperature,
		NumPredict:  cfg.OllamaNumPredict,
	}
}

// NewMoodAnalyzerFromConfig wires an OllamaClient into a MoodAnalyzer.
// Swap the generator here to use a different text-generation provider.
func NewMoodAnalyzerFromConfig(cfg *config.Config, log *logger.Logger, rec metrics.Recorder) (*MoodAnalyzer, *OllamaClient) {
	client := NewOllamaClient(OllamaConfigFrom(cfg), log, rec)
	return NewMoodAnalyzer(client, log, rec), client
}
