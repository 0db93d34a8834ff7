package employee

type CreateEmployeeRequest struct {
	Name          string `form:"name" binding:"required"`
	EmployeeCode  string `form:"employee_code"` // auto-assigned when empty
	Designation   string `form:"designation"`
	BankName      string `form:"bank_name"`
	IFSCCode      string `form:"ifsc_code"`
	AccountNumber string `form:"account_number"`
	PhoneNumber   string `form:"phone_number"`
	Email         string `form:"email"`
	Address       string `form:"address"`

	// Photo is the stored upload filename, set by the handler after the
	// multipart file is written to disk.
	Photo string `form:"-"`
}

type EmployeeResponse struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	EmployeeCode  string `json:"employee_code"`
	Designation   string `json:"designation"`
	BankName      string `json:"bank_name"`
	IFSCCode      string `json:"ifsc_code"`
	AccountNumber string `json:"account_number"`
	Photo         string `json:"photo"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// EmployeeOption is the trimmed shape used by dropdowns on the frontend.
type EmployeeOption struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
}
