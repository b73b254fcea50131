package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogAuditEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogAuditEvent(ctx, AuditEvent{
		Action:     "delete",
		Actor:      "anonymous",
		Resource:   "project",
		ResourceID: "p-1",
		Result:     AuditFailure,
		Category:   "not_found",
	})

	entries := logs.FilterMessage("Audit event").All()
	if len(entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	for k, want := range map[string]string{
		"audit.action":        "delete",
		"audit.actor":         "anonymous",
		"audit.resource_type": "project",
		"audit.resource_id":   "p-1",
		"audit.result":        "failure",
		"audit.error":         "not_found",
	} {
		if fields[k] != want {
			t.Errorf("%s: expected %q, got %v", k, want, fields[k])
		}
	}
}

func TestLogAuditEventOmitsEmptyCategory(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogAuditEvent(ctx, AuditEvent{Action: "create", Resource: "service", Result: AuditSuccess})

	if _, ok := logs.All()[0].ContextMap()["audit.error"]; ok {
		t.Fatal("expected no audit.error on success")
	}
}
