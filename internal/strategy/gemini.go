package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/eloqagency/website/pkg/logger"
)

const (
	// DefaultModel is the default Gemini text model
	DefaultModel = "gemini-3-flash-preview"

	// DefaultTemperature matches the agency's house tone
	DefaultTemperature = 0.7

	// DefaultTimeout bounds a single HTTP exchange with the provider
	DefaultTimeout = 60 * time.Second
)

// GeminiConfig holds the configuration for the Gemini client
type GeminiConfig struct {
	APIKey      string
	Model       string
	// Temperature is the sampling temperature; nil selects DefaultTemperature.
	Temperature *float64
	Timeout     time.Duration
}

// GeminiClient generates text with the Gemini API
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	log         *slog.Logger
	baseURL     string
}

// GeminiOption configures the GeminiClient
type GeminiOption func(*GeminiClient)

// WithLogger sets the logger
func WithLogger(log *slog.Logger) GeminiOption {
	return func(c *GeminiClient) {
		c.log = log
	}
}

// WithBaseURL points the client at a different API endpoint
func WithBaseURL(url string) GeminiOption {
	return func(c *GeminiClient) {
		c.baseURL = url
	}
}

// NewGeminiClient creates a Gemini client. An empty API key fails with
// ErrMissingAPIKey without touching the network.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, opts ...GeminiOption) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	temperature := DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &GeminiClient{
		model:       cfg.Model,
		temperature: float32(temperature),
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Scope("strategy.gemini"))

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if c.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.client = client

	return c, nil
}

// Generate sends one generateContent call and returns the response text.
// No retries: a failed call is reported to the caller as-is.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	c.log.Debug("generating content",
		slog.String("model", c.model),
		slog.Int("prompt_chars", len(req.Prompt)),
	)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return resp.Text(), nil
}

// Model returns the configured model name
func (c *GeminiClient) Model() string {
	return c.model
}
