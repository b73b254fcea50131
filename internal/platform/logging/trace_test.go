package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const validTraceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func TestParseTraceparent(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		ok      bool
		sampled bool
	}{
		{name: "sampled", header: validTraceparent, ok: true, sampled: true},
		{name: "not sampled", header: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-00", ok: true},
		{name: "empty", header: ""},
		{name: "short trace id", header: "00-4bf92f35-00f067aa0ba902b7-01"},
		{name: "legacy cloud trace header", header: "105445aa7843bc8bf206b120001000/1;o=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ok := parseTraceparent(tt.header)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && tc.sampled != tt.sampled {
				t.Fatalf("expected sampled=%v, got %v", tt.sampled, tc.sampled)
			}
		})
	}
}

func TestTraceResource(t *testing.T) {
	got := traceResource(validTraceparent, "demo")
	want := "projects/demo/traces/4bf92f3577b34da6a3ce929d0e0e4736"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if traceResource(validTraceparent, "") != "" {
		t.Fatal("expected empty resource without project")
	}
}

func TestLoggerWithTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	loggerWithTrace(zap.New(core), validTraceparent, "demo", "req-1").Info("x")

	fields := logs.All()[0].ContextMap()
	if fields["logging.googleapis.com/trace"] != "projects/demo/traces/4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("unexpected trace field: %v", fields)
	}
	if fields["logging.googleapis.com/spanId"] != "00f067aa0ba902b7" {
		t.Fatalf("unexpected span field: %v", fields)
	}
	if fields["requestId"] != "req-1" {
		t.Fatalf("unexpected request id: %v", fields)
	}
}

func TestLoggerWithTraceNoFields(t *testing.T) {
	base := zap.NewNop()
	if loggerWithTrace(base, "", "", "") != base {
		t.Fatal("expected base logger when nothing to add")
	}
}
