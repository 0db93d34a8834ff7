package payment

type AddPaymentRequest struct {
	ClientID string  `json:"client_id" binding:"required"`
	WorkID   string  `json:"work_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Discount float64 `json:"discount"`
}

type PaymentResponse struct {
	ID                 string  `json:"_id"`
	ClientID           string  `json:"client_id"`
	WorkID             string  `json:"work_id"`
	Amount             float64 `json:"amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	TotalBill          float64 `json:"total_bill"`
	PaymentDate        string  `json:"payment_date"`
}

// PaymentHistoryRow is a payment joined with its work's description, the
// shape the payment history listing returns.
type PaymentHistoryRow struct {
	WorkDescription    string  `json:"work_description"`
	Amount             float64 `json:"amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	TotalBill          float64 `json:"total_bill"`
	PaymentDate        string  `json:"payment_date"`
}
