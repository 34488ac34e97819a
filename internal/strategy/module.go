package strategy

import (
	"context"
	"errors"
	"log/slog"

	"go.uber.org/fx"

	"github.com/eloqagency/website/internal/config"
	"github.com/eloqagency/website/pkg/logger"
)

var Module = fx.Module("strategy",
	fx.Provide(
		NewGenerator,
		NewRegistryFromConfig,
	),
)

// NewGenerator builds the Gemini client, or Disabled when no credential is set.
func NewGenerator(cfg *config.Config, log *slog.Logger) (Generator, error) {
	client, err := NewGeminiClient(context.Background(), GeminiConfig{
		APIKey:      cfg.Strategy.Credential(),
		Model:       cfg.Strategy.Model,
		Temperature: &cfg.Strategy.Temperature,
		Timeout:     cfg.Strategy.Timeout,
	}, WithLogger(log))
	if errors.Is(err, ErrMissingAPIKey) {
		log.Warn("strategy generator disabled: set API_KEY or GOOGLE_API_KEY",
			logger.Scope("strategy"),
		)
		return Disabled{}, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewRegistryFromConfig creates the visitor registry.
func NewRegistryFromConfig(gen Generator, cfg *config.Config, log *slog.Logger) *Registry {
	return NewRegistry(gen, log, cfg.Session.TTL)
}
