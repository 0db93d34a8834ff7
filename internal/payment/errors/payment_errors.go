package paymenterrors

import (
	"net/http"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/apperror"
)

var (
	ErrNoPaymentsFound = apperror.New(
		apperror.CodeNotFound,
		"No payments found for this client",
		http.StatusNotFound,
	)

	ErrWorkNotFound = apperror.New(
		apperror.CodeNotFound,
		"Work not found",
		http.StatusNotFound,
	)
)
