package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// AuditEvent describes one content mutation.
type AuditEvent struct {
	Action     string // create, update, delete
	Actor      string // authenticated UID or "anonymous"
	Resource   string // project, service, blog_post, profile, status_check
	ResourceID string
	Result     string
	// Category is an audit-safe error classification, set on failures only.
	Category string
}

// LogAuditEvent records a content mutation for later review.
func LogAuditEvent(ctx context.Context, ev AuditEvent) {
	fields := []zap.Field{
		zap.String("audit.action", ev.Action),
		zap.String("audit.actor", ev.Actor),
		zap.String("audit.resource_type", ev.Resource),
		zap.String("audit.resource_id", ev.ResourceID),
		zap.String("audit.result", ev.Result),
	}
	if ev.Category != "" {
		fields = append(fields, zap.String("audit.error", ev.Category))
	}
	LoggerFromContext(ctx).Info("Audit event", fields...)
}
