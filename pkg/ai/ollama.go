package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"carecompanion-backend/pkg/logger"
	"carecompanion-backend/pkg/metrics"
)

const (
	defaultOllamaBaseURL = "http://localhost:11434"
	defaultOllamaModel   = "llama3"
	defaultOllamaTimeout = 180 * time.Second
	// maxGenerateAttempts is the first call plus one retry.
	maxGenerateAttempts = 2
)

// OllamaConfig configures an OllamaClient. Zero values are replaced by defaults.
type OllamaConfig struct {
	BaseURL     string        // e.g., "http://localhost:11434"
	Model       string        // e.g., "llama3", "mistral"
	Timeout     time.Duration // per attempt
	Temperature float64
	NumPredict  int
}

// OllamaClient implements TextGenerator against Ollama's /api/generate endpoint.
type OllamaClient struct {
	cfg        OllamaConfig
	httpClient *http.Client
	log        *logger.Logger
	metrics    metrics.Recorder
}

// NewOllamaClient creates a new Ollama client
func NewOllamaClient(cfg OllamaConfig, log *logger.Logger, rec metrics.Recorder) *OllamaClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOllamaBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = defaultOllamaModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultOllamaTimeout
	}
	if rec == nil {
		rec = metrics.Noop()
	}
	return &OllamaClient{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log.With("component", "OllamaClient"),
		metrics:    rec,
	}
}

// Config returns the effective configuration.
func (o *OllamaClient) Config() OllamaConfig {
	return o.cfg
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate sends the prompt, retrying once on any failure. The second attempt starts
// only after the first has fully failed; a cancelled caller context is not retried.
func (o *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  o.cfg.Model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: o.cfg.Temperature,
			NumPredict:  o.cfg.NumPredict,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		o.log.Debug("calling ollama", "attempt", attempt, "model", o.cfg.Model)

		started := time.Now()
		text, err := o.generateOnce(ctx, body)
		o.metrics.ObserveUpstreamAttempt(outcomeLabel(err), time.Since(started))
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
		if attempt < maxGenerateAttempts {
			o.log.Warn("ollama attempt failed, retrying", "attempt", attempt, "error", err)
		}
	}
	return "", lastErr
}

// generateOnce performs a single bounded request. The attempt context is released on every path.
func (o *OllamaClient) generateOnce(ctx context.Context, body []byte) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, o.cfg.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamError, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(attemptCtx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransportError(attemptCtx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: ollama API error (%d): %s", ErrUpstreamError, resp.StatusCode, truncate(string(respBody), 200))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: failed to parse response: %v", ErrUpstreamError, err)
	}

	return result.Response, nil
}

// Ping checks that the configured server answers on /api/tags.
func (o *OllamaClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.cfg.BaseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstreamError, resp.StatusCode)
	}
	return nil
}

func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: ollama request failed: %v", ErrUpstreamError, err)
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUpstreamTimeout):
		return "timeout"
	default:
		return "error"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
