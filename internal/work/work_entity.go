package work

import (
	"time"

	"github.com/google/uuid"
)

// Observed lifecycle statuses. The status column is free text on purpose:
// an update may write any value, these are only the ones the system
// assigns itself.
const (
	StatusPendingDocuments = "pending documents"
	StatusInProgress       = "in progress"
	StatusCompleted        = "completed"
)

// StatusFilterAll is the sentinel meaning "no status filter" on reports.
const StatusFilterAll = "all"

type Work struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	WorkDescription   string     `gorm:"column:work_description;type:text"`
	WorkAssignedDate  time.Time  `gorm:"column:work_assigned_date;not null;index"`
	PendingDocuments  bool       `gorm:"column:pending_documents;default:false"`
	Status            string     `gorm:"column:status;type:varchar(100);index"`
	EmployeeID        uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	ClientID          uuid.UUID  `gorm:"column:client_id;type:uuid;not null;index"`
	WorkCompletedDate *time.Time `gorm:"column:work_completed_date"`
	DueDate           *time.Time `gorm:"column:due_date"`
	FeeEstimation     string     `gorm:"column:fee_estimation;type:varchar(50)"`
	Amount            float64    `gorm:"column:amount;type:numeric(12,2);default:0"`
	Discount          float64    `gorm:"column:discount;type:numeric(5,2);default:0"`
	TotalBill         float64    `gorm:"column:total_bill;type:numeric(12,2);default:0"`
	IsPaid            bool       `gorm:"column:is_paid;default:false"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Work) TableName() string {
	return "works"
}

// DeriveStatus is the creation-time rule: pending documents gate the item,
// otherwise it goes straight to in progress.
func DeriveStatus(pendingDocuments bool) string {
	if pendingDocuments {
		return StatusPendingDocuments
	}
	return StatusInProgress
}

// ComputeTotalBill applies the firm's percentage discount. The same
// formula backs bill submission and payment recording.
func ComputeTotalBill(amount, discount float64) float64 {
	return amount - (amount * discount / 100)
}
