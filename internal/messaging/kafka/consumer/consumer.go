package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/audit"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeWorkLifecycle appends every work lifecycle / billing event to the
// audit trail. Messages that fail to decode are committed and skipped so a
// poison message cannot stall the partition.
func ConsumeWorkLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditRepo audit.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.work_lifecycle")
	log.Info("work lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("work lifecycle consumer stopped")
				return
			}
			log.Error("fetch work lifecycle message failed", zap.Error(err))
			continue
		}

		entry := audit.AuditLog{
			AggregateID: string(msg.Key),
			Payload:     msg.Value,
			OccurredAt:  time.Now().UTC(),
		}

		for _, h := range msg.Headers {
			if h.Key == "event_type" {
				entry.EventType = string(h.Value)
			}
		}

		var envelope struct {
			EventType  string    `json:"event_type"`
			RequestID  string    `json:"request_id"`
			OccurredAt time.Time `json:"occurred_at"`
		}
		if err := json.Unmarshal(msg.Value, &envelope); err != nil {
			log.Error("decode lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if envelope.EventType != "" {
			entry.EventType = envelope.EventType
		}
		entry.RequestID = envelope.RequestID
		if !envelope.OccurredAt.IsZero() {
			entry.OccurredAt = envelope.OccurredAt
		}

		if err := auditRepo.Create(ctx, &entry); err != nil {
			log.Error("write audit log failed",
				zap.String("event_type", entry.EventType),
				zap.String("aggregate_id", entry.AggregateID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("lifecycle event recorded",
			zap.String("event_type", entry.EventType),
			zap.String("aggregate_id", entry.AggregateID),
		)
	}
}
