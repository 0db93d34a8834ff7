package client

import (
	"encoding/json"
	"strings"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work"
)

type CreateClientRequest struct {
	Name          string `form:"name" binding:"required"`
	BusinessName  string `form:"business_name"`
	PANNumber     string `form:"pan_number"`
	GSTINNo       string `form:"gstin_no"`
	Address       string `form:"address"`
	PhoneNumber   string `form:"phone_number"`
	ReferenceName string `form:"reference_name"`
	EmailID       string `form:"email_id"`
	AadharNumber  string `form:"aadhar_number"`
	EmployeeName  string `form:"employee_name" binding:"required"`

	// Works is the raw JSON array of initial work items carried inside
	// the multipart form.
	Works string `form:"works"`

	// ClientPic is the stored upload filename, set by the handler.
	ClientPic string `form:"-"`
}

// InitialWorkItem is one entry of the works payload. pending_documents
// arrives either as a boolean or as a list of outstanding document names;
// a non-empty list means documents are pending.
type InitialWorkItem struct {
	WorkName         string          `json:"work_name"`
	WorkDescription  string          `json:"work_description"`
	PendingDocuments json.RawMessage `json:"pending_documents"`
	FeeEstimation    json.RawMessage `json:"fee_estimation"`
	DueDate          string          `json:"due_date"`
}

func (w InitialWorkItem) DocumentsPending() bool {
	raw := strings.TrimSpace(string(w.PendingDocuments))
	if raw == "" || raw == "null" {
		return false
	}

	var b bool
	if err := json.Unmarshal(w.PendingDocuments, &b); err == nil {
		return b
	}

	var list []any
	if err := json.Unmarshal(w.PendingDocuments, &list); err == nil {
		return len(list) > 0
	}

	return false
}

// Fee normalizes fee_estimation, which clients send either as a string
// or a bare number.
func (w InitialWorkItem) Fee() string {
	raw := strings.TrimSpace(string(w.FeeEstimation))
	if raw == "" || raw == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(w.FeeEstimation, &s); err == nil {
		return s
	}

	return raw
}

type ClientResponse struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	BusinessName  string `json:"business_name"`
	PANNumber     string `json:"pan_number"`
	GSTINNo       string `json:"gstin_no"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phone_number"`
	ReferenceName string `json:"reference_name"`
	EmailID       string `json:"email_id"`
	AadharNumber  string `json:"aadhar_number"`
	ClientPic     string `json:"client_pic"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
}

type CreateClientResponse struct {
	Message string              `json:"message"`
	Client  ClientResponse      `json:"client"`
	Works   []work.WorkResponse `json:"works"`
}
