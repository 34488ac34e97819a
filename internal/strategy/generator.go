package strategy

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned before any network attempt when no
// credential is configured.
var ErrMissingAPIKey = errors.New("strategy: API key is missing")

// Request is a single text-generation call.
type Request struct {
	SystemInstruction string
	Prompt            string
}

// Generator calls a remote text-generation model.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Disabled is installed when the site starts without a credential. Every call
// fails with ErrMissingAPIKey so the flow still reaches StatusError.
type Disabled struct{}

func (Disabled) Generate(context.Context, Request) (string, error) {
	return "", ErrMissingAPIKey
}
