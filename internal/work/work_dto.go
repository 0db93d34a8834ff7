package work

type CreateWorkRequest struct {
	ClientID         string `json:"client_id" binding:"required"`
	EmployeeID       string `json:"employee_id" binding:"required"`
	WorkDescription  string `json:"work_description"`
	PendingDocuments bool   `json:"pending_documents"`
	WorkAssignedDate string `json:"work_assigned_date"`
	DueDate          string `json:"due_date"`
	FeeEstimation    string `json:"fee_estimation"`
}

type UpdateWorkRequest struct {
	Status            string `json:"status"`
	WorkCompletedDate string `json:"work_completed_date"`
}

type SubmitBillRequest struct {
	WorkID   string  `json:"workId" binding:"required"`
	Amount   float64 `json:"amount"`
	Discount float64 `json:"discount"`
}

type WorkResponse struct {
	ID                string  `json:"_id"`
	WorkDescription   string  `json:"work_description"`
	WorkAssignedDate  string  `json:"work_assigned_date"`
	PendingDocuments  bool    `json:"pending_documents"`
	Status            string  `json:"status"`
	EmployeeID        string  `json:"employee_id"`
	ClientID          string  `json:"client_id"`
	WorkCompletedDate string  `json:"work_completed_date,omitempty"`
	DueDate           string  `json:"due_date,omitempty"`
	FeeEstimation     string  `json:"fee_estimation"`
	Amount            float64 `json:"amount"`
	Discount          float64 `json:"discount"`
	TotalBill         float64 `json:"total_bill"`
	IsPaid            bool    `json:"isPaid"`
}

// ClientWorkResponse is a work item enriched with its assigned employee,
// served by GET /work/:clientId.
type ClientWorkResponse struct {
	WorkResponse
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
}

// EmployeeWorkResponse is a work item enriched with its owning client,
// served by GET /employee/:id/work.
type EmployeeWorkResponse struct {
	WorkResponse
	ClientName string `json:"client_name"`
}

type ReportQuery struct {
	Status   string `form:"status"`
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
}

type ReportRow struct {
	ClientName       string `json:"client_name"`
	EmployeeName     string `json:"employee_name"`
	WorkAssignedDate string `json:"work_assigned_date"`
	Status           string `json:"status"`
	WorkDescription  string `json:"work_description"`
}
