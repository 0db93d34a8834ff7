package audit

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only trail of work lifecycle and billing events,
// written by the Kafka consumer.
type AuditLog struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	RequestID   string    `gorm:"column:request_id;type:varchar(64)"`
	EventType   string    `gorm:"column:event_type;type:varchar(100);not null;index"`
	AggregateID string    `gorm:"column:aggregate_id;type:varchar(64);index"`
	Payload     []byte    `gorm:"column:payload;type:jsonb"`
	OccurredAt  time.Time `gorm:"column:occurred_at"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
