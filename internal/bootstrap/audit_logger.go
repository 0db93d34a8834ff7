package bootstrap

import "context"

// AuditLog is a process-level audit entry, distinct from the domain audit
// trail written by the Kafka consumer.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
