package clienterrors

import (
	"fmt"
	"net/http"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)

	ErrInvalidWorksPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid format for works array",
		http.StatusBadRequest,
	)
)

func ErrOnboardingEmployeeNotFound(name string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Employee %q not found", name),
		http.StatusNotFound,
	)
}
