package payrollerrors

import (
	"net/http"

	"chequebook/internal/shared/apperror"
)

var (
	ErrInvalidWeekEnding = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid week ending date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only a pending payroll can be marked paid",
		http.StatusConflict,
	)
)
