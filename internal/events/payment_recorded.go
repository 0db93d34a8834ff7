package events

import "time"

const PaymentRecordedTopic = "firm.payment.recorded.v1"

type PaymentRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PaymentID  string    `json:"payment_id"`
	WorkID     string    `json:"work_id"`
	ClientID   string    `json:"client_id"`
	TotalBill  float64   `json:"total_bill"`
	OccurredAt time.Time `json:"occurred_at"`
}
