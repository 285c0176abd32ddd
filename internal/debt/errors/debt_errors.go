package debterrors

import (
	"net/http"

	"chequebook/internal/shared/apperror"
)

var (
	ErrEntityNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The selected customer or employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEntityType = apperror.New(
		apperror.CodeInvalidInput,
		"Entity type must be customer or employee",
		http.StatusBadRequest,
	)
)
