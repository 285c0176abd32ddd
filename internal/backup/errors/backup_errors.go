package backuperrors

import (
	"net/http"

	"chequebook/internal/shared/apperror"
)

var ErrEmptySnapshot = apperror.New(
	apperror.CodeInvalidInput,
	"The snapshot contains no record kinds",
	http.StatusBadRequest,
)
