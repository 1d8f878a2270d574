package telemetry

import (
	"context"
	"testing"
)

func TestEnabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	if Enabled() {
		t.Error("Enabled() = true with no endpoint, want false")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	if !Enabled() {
		t.Error("Enabled() = false with endpoint set, want true")
	}
}

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span IsRecording() = true, want false")
	}
}
