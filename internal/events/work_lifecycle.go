package events

import "time"

const WorkLifecycleTopic = "firm.work.lifecycle.v1"

type WorkCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	WorkID     string    `json:"work_id"`
	ClientID   string    `json:"client_id"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type BillSubmittedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	WorkID     string    `json:"work_id"`
	Amount     float64   `json:"amount"`
	Discount   float64   `json:"discount"`
	TotalBill  float64   `json:"total_bill"`
	OccurredAt time.Time `json:"occurred_at"`
}
