package telemetry

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), "  ", "assistant-desk")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestExporterOptions(t *testing.T) {
	if n := len(exporterOptions("http://collector:4318")); n != 1 {
		t.Fatalf("url endpoint: expected 1 option, got %d", n)
	}
	if n := len(exporterOptions("collector:4318")); n != 2 {
		t.Fatalf("host endpoint: expected 2 options, got %d", n)
	}
}

func TestSetupWithEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), "127.0.0.1:4318", "assistant-desk-test")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	// Nothing was recorded, so shutdown has nothing to flush.
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
