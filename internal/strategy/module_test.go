package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eloqagency/website/internal/config"
)

func TestNewGenerator_UsesConfiguredTemperature(t *testing.T) {
	cfg := &config.Config{Strategy: config.StrategyConfig{APIKey: "test-key", Temperature: 0}}

	gen, err := NewGenerator(cfg, discardLogger())
	require.NoError(t, err)

	client, ok := gen.(*GeminiClient)
	require.True(t, ok)
	assert.Zero(t, client.temperature)
}

func TestNewGenerator_DisabledWithoutKey(t *testing.T) {
	gen, err := NewGenerator(&config.Config{}, discardLogger())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
