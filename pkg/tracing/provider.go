package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"

	"github.com/eloqagency/website/internal/config"
	"github.com/eloqagency/website/pkg/logger"
)

var Module = fx.Module("tracing",
	fx.Invoke(Register),
)

// NewProvider builds an SDK tracer provider exporting over OTLP/HTTP.
func NewProvider(ctx context.Context, cfg config.OtelConfig) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.ExporterEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
		)),
	), nil
}

// Register installs the global tracer provider when an exporter endpoint is
// configured and flushes it on shutdown. Without an endpoint it does nothing.
func Register(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) {
	if !cfg.Otel.Enabled() {
		return
	}
	log = log.With(logger.Scope("tracing"))

	var tp *sdktrace.TracerProvider
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			provider, err := NewProvider(ctx, cfg.Otel)
			if err != nil {
				return err
			}
			tp = provider
			otel.SetTracerProvider(tp)
			log.Info("tracing enabled",
				slog.String("endpoint", cfg.Otel.ExporterEndpoint),
				slog.Float64("sampling_rate", cfg.Otel.SamplingRate),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if tp == nil {
				return nil
			}
			return tp.Shutdown(ctx)
		},
	})
}
