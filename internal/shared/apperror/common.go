package apperror

import "net/http"

var (
	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)

// RequiredField builds the validation error for a missing required field.
// The message format is part of the endpoint contract.
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		"Missing required field: "+field,
		http.StatusBadRequest,
	)
}

// InvalidField builds the validation error for a field that failed a
// non-required binding rule.
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		field+" is invalid",
		http.StatusBadRequest,
	)
}
