package autherrors

import (
	"net/http"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials is returned for unknown email AND wrong
	// password so the response never reveals which part failed.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredentials,
		"Invalid credentials",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not generate token",
		http.StatusInternalServerError,
	)
)
