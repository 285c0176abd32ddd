package chequeerrors

import (
	"net/http"

	"chequebook/internal/shared/apperror"
)

var (
	ErrPayeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A payee must be selected for the cheque",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
