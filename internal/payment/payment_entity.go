package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a line item of money received against one work/client pair.
// Rows are never mutated after creation.
type Payment struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ClientID           uuid.UUID `gorm:"column:client_id;type:uuid;not null;index"`
	WorkID             uuid.UUID `gorm:"column:work_id;type:uuid;not null;index"`
	Amount             float64   `gorm:"column:amount;type:numeric(12,2);not null"`
	DiscountPercentage float64   `gorm:"column:discount_percentage;type:numeric(5,2);default:0"`
	TotalBill          float64   `gorm:"column:total_bill;type:numeric(12,2);not null"`
	PaymentDate        time.Time `gorm:"column:payment_date;not null;index"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
