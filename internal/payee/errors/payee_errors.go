package payeeerrors

import (
	"net/http"

	"chequebook/internal/shared/apperror"
)

var (
	ErrCompanyNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Company name is required",
		http.StatusBadRequest,
	)
	ErrEmptyImportPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Import payload must contain lines or records",
		http.StatusBadRequest,
	)
)
