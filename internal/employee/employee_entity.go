package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name          string    `gorm:"column:name;type:varchar(255);not null"`
	EmployeeCode  string    `gorm:"column:employee_code;type:varchar(50);not null;uniqueIndex:uq_employees_employee_code"`
	Designation   string    `gorm:"column:designation;type:varchar(100)"`
	BankName      string    `gorm:"column:bank_name;type:varchar(100)"`
	IFSCCode      string    `gorm:"column:ifsc_code;type:varchar(20)"`
	AccountNumber string    `gorm:"column:account_number;type:varchar(30)"`
	Photo         string    `gorm:"column:photo;type:text"` // stored upload filename only
	PhoneNumber   string    `gorm:"column:phone_number;type:varchar(20)"`
	Email         string    `gorm:"column:email;type:text"`
	Address       string    `gorm:"column:address;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
