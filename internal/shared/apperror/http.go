package apperror

import (
	"errors"
)

// HTTPError is the wire-facing shape of an AppError.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ToHTTP converts any error into an HTTPError. Non-AppError values map to
// a generic 500 so handlers never leak a bare error shape.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		details := any(nil)
		if appErr.Err != nil {
			details = appErr.Err.Error()
		}
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		}
	}
	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
