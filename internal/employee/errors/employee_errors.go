package employeeerrors

import (
	"net/http"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	// The published interface reports a duplicate code as a plain bad
	// request, not a conflict, so the machine code matches the status.
	ErrEmployeeCodeExists = apperror.New(
		apperror.CodeInvalidInput,
		"Employee code already exists. Please use a different employee code.",
		http.StatusBadRequest,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
