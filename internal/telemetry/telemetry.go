// Package telemetry provides OpenTelemetry tracing for the game.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "hangman"
	serviceVersion = "0.1.0"
)

// Attribute keys shared by game and score spans.
const (
	DifficultyKey = attribute.Key("hangman.difficulty")
	OutcomeKey    = attribute.Key("hangman.outcome")
	RemainingKey  = attribute.Key("hangman.remaining_guesses")
	StoreKey      = attribute.Key("hangman.score_store")
)

// Setup installs a tracer provider that exports over OTLP/HTTP.
// The exporter is configured from the standard OTEL_* environment variables,
// e.g. OTEL_EXPORTER_OTLP_ENDPOINT and OTEL_EXPORTER_OTLP_HEADERS.
//
// The returned shutdown function flushes pending spans and must be called
// before the process exits.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	// The default handler prints to stderr, which belongs to the game screen.
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.Warn().Err(err).Msg("telemetry export failed")
	}))

	return tp.Shutdown, nil
}

// Enabled reports whether an OTLP endpoint has been configured.
func Enabled() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != ""
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("hangman/" + name)
}

// NoopTracer returns a tracer that records nothing, for tests and for runs
// without an exporter.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("hangman/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
