package telemetry

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const defaultServiceName = "garagehub"

// serviceName resolves the reported service name, falling back to the
// application default when OTEL_SERVICE_NAME is unset.
func serviceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return defaultServiceName
}

// telemetryEnabled reports whether tracing is switched on via env.
func telemetryEnabled() bool {
	v := strings.ToLower(os.Getenv("ENABLE_TELEMETRY"))
	return v == "true" || v == "1"
}

// InitTelemetry sets up the OTLP trace exporter when enabled.
// Returns (shutdown function, enabled, error). Tracing stays off when
// ENABLE_TELEMETRY is unset or no endpoint is configured.
func InitTelemetry() (func(), bool, error) {
	ctx := context.Background()

	if !telemetryEnabled() {
		return func() {}, false, nil
	}

	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func() {}, false, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // Use HTTPS in production
	)
	if err != nil {
		return func() {}, false, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName()),
			semconv.ServiceVersion(os.Getenv("OTEL_SERVICE_VERSION")),
		),
	)
	if err != nil {
		return func() {}, false, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	// The shutdown function flushes pending spans; it is bounded so a
	// dead collector cannot hang process exit.
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Failed to flush traces on shutdown")
		}
	}, true, nil
}
