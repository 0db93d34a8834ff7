package client

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name          string    `gorm:"column:name;type:varchar(255);not null;index"`
	BusinessName  string    `gorm:"column:business_name;type:varchar(255)"`
	PANNumber     string    `gorm:"column:pan_number;type:varchar(20)"`
	GSTINNo       string    `gorm:"column:gstin_no;type:varchar(20)"`
	Address       string    `gorm:"column:address;type:text"`
	PhoneNumber   string    `gorm:"column:phone_number;type:varchar(20)"`
	ReferenceName string    `gorm:"column:reference_name;type:varchar(255)"`
	EmailID       string    `gorm:"column:email_id;type:text"`
	AadharNumber  string    `gorm:"column:aadhar_number;type:varchar(20)"`
	ClientPic     string    `gorm:"column:client_pic;type:text"` // stored upload filename only
	// Denormalized onboarding employee, kept for frontend compatibility.
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;index"`
	EmployeeName string    `gorm:"column:employee_name;type:varchar(255)"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Client) TableName() string {
	return "clients"
}
