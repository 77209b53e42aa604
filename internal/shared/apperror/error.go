// Package apperror defines the error taxonomy of the document service.
// Every failure a handler can surface (missing field, missing template,
// per-document generation failure, unexpected fault) is an AppError
// carrying its HTTP mapping, so endpoint behavior is decided where the
// error is created rather than in the handlers.
package apperror

import "fmt"

type AppError struct {
	Code       string // machine-readable code (e.g. GENERATION_ERROR)
	Message    string // client-facing text, part of the wire contract
	HTTPStatus int
	Err        error // underlying cause, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with no underlying cause. The message is what
// the client sees verbatim.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches a cause to an AppError so errors.Is/As reach through it.
// Returns nil for a nil cause.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
