package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerUsesRequestIDAsTraceFallback(t *testing.T) {
	var traceID *string
	h := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
		if LoggerFromContext(r.Context()) == nil {
			t.Fatal("expected request logger")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-42"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if traceID == nil || *traceID != "req-42" {
		t.Fatalf("expected trace id req-42, got %v", traceID)
	}
}

func TestAccessLoggerWritesSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	req = req.WithContext(WithLogger(req.Context(), zap.New(core)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one access entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusCreated) {
		t.Fatalf("expected status 201, got %v", fields["status"])
	}
	if fields["path"] != "/api/projects" || fields["method"] != http.MethodPost {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if fields["bytes"] != int64(2) {
		t.Fatalf("expected 2 bytes, got %v", fields["bytes"])
	}
}
