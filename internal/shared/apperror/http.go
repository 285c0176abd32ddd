package apperror

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// HTTPError is the flattened form handlers hand to the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP translates any error coming out of a service into an HTTPError.
// Storage failures are passed through as-is (no retry layer), but their
// message is surfaced unchanged so the caller sees what the store said.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		out := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Err != nil {
			out.Details = appErr.Err.Error()
		}
		return out
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return HTTPError{
			Status:  http.StatusNotFound,
			Code:    CodeNotFound,
			Message: "Resource not found",
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeStorageError,
		Message: err.Error(),
	}
}
