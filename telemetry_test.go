package canopy

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewOTLPTracerProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	tp, err := NewOTLPTracerProvider(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp != nil {
		t.Error("provider should be nil when no endpoint is configured")
	}
}

func TestNewOTLPTracerProvider_Enabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	tp, err := NewOTLPTracerProvider(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp == nil {
		t.Fatal("expected a provider with an endpoint configured")
	}
}

func TestProgram_RenderSpan(t *testing.T) {
	asciiProfile(t)
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	p := NewProgram(Label("x"), WithSize(12, 3), WithTracerProvider(tp))
	p.View()

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "canopy.render" {
		t.Errorf("span name = %q", span.Name())
	}
	attrs := map[string]int64{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	if attrs["terminal.width"] != 12 || attrs["terminal.height"] != 3 {
		t.Errorf("span attributes = %v", attrs)
	}
}
