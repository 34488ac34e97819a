// Package strategy implements the AI strategist: a single prompt-to-text
// round trip with an idle/loading/success/error lifecycle.
package strategy

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/eloqagency/website/internal/metrics"
	"github.com/eloqagency/website/pkg/logger"
	"github.com/eloqagency/website/pkg/tracing"
)

// ErrEmptyPrompt is returned for empty or whitespace-only input. The flow is
// left untouched.
var ErrEmptyPrompt = errors.New("strategy: prompt is empty")

// Snapshot is an immutable view of a flow.
type Snapshot struct {
	Status    Status `json:"status"`
	// Prompt is the trimmed brief of the request that produced this state.
	Prompt    string `json:"prompt"`
	Result    string `json:"result"`
	RequestID string `json:"request_id,omitempty"`
	// Stale marks an outcome that was superseded by a newer submit and
	// therefore not applied to the flow.
	Stale bool `json:"stale"`
}

// Flow tracks one visitor's strategy requests.
type Flow struct {
	gen Generator
	log *slog.Logger

	mu      sync.Mutex
	status  Status
	prompt  string
	result  string
	current uuid.UUID
}

// NewFlow creates an idle flow.
func NewFlow(gen Generator, log *slog.Logger) *Flow {
	return &Flow{
		gen: gen,
		log: log.With(logger.Scope("strategy")),
	}
}

// Snapshot returns the current state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() Snapshot {
	s := Snapshot{Status: f.status, Prompt: f.prompt, Result: f.result}
	if f.current != uuid.Nil {
		s.RequestID = f.current.String()
	}
	return s
}

// Submit runs one generation for prompt and blocks until it resolves.
//
// Each submit gets a fresh request token. If another submit starts before this
// one resolves, this outcome is returned with Stale set and the flow keeps the
// newer request's state.
func (f *Flow) Submit(ctx context.Context, prompt string) (Snapshot, error) {
	brief := strings.TrimSpace(prompt)
	if brief == "" {
		return f.Snapshot(), ErrEmptyPrompt
	}

	token := uuid.New()
	f.mu.Lock()
	f.current = token
	f.status = StatusLoading
	f.prompt = brief
	f.result = ""
	f.mu.Unlock()

	ctx, span := tracing.Start(ctx, "strategy.generate",
		attribute.String("strategy.request_id", token.String()),
	)
	defer span.End()

	started := time.Now()
	text, err := f.gen.Generate(ctx, Request{
		SystemInstruction: SystemInstruction,
		Prompt:            BuildPrompt(brief),
	})
	metrics.StrategyDuration.Observe(time.Since(started).Seconds())

	outcome := Snapshot{Prompt: brief, RequestID: token.String()}
	if err != nil {
		f.log.Error("strategy generation failed",
			slog.String("request_id", token.String()),
			logger.Error(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		outcome.Status = StatusError
		outcome.Result = OfflineMessage
	} else {
		if text == "" {
			text = FallbackText
		}
		outcome.Status = StatusSuccess
		outcome.Result = text
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current != token {
		f.log.Debug("discarding stale strategy response",
			slog.String("request_id", token.String()),
			slog.String("current_request_id", f.current.String()),
		)
		metrics.StrategyRequests.WithLabelValues("stale").Inc()
		outcome.Stale = true
		return outcome, nil
	}

	f.status = outcome.Status
	f.result = outcome.Result
	metrics.StrategyRequests.WithLabelValues(outcome.Status.String()).Inc()

	return outcome, nil
}
