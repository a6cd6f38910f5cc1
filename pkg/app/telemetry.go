package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mnemo-chat/mnemo/internal/config"
)

// setupTelemetry installs an OTLP/HTTP trace exporter when telemetry is
// enabled, and returns a shutdown function. Disabled telemetry returns a
// no-op shutdown so callers never branch.
func setupTelemetry(cfg *config.TelemetryConfig, version string, logger *slog.Logger) (func(context.Context) error, error) {
	if cfg == nil || !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	ratio := 1.0
	if cfg.SampleRatio != nil {
		ratio = *cfg.SampleRatio
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "mnemo"),
			attribute.String("service.version", version),
		)),
	)
	otel.SetTracerProvider(provider)

	logger.Info("telemetry enabled", "endpoint", cfg.Endpoint, "sample_ratio", ratio)
	return provider.Shutdown, nil
}
