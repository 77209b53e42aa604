package apperror

import (
	"github.com/go-playground/validator/v10"
)

// MapValidationError turns a Gin binding error into an AppError. Only the
// first field error is reported, matching the endpoint contract of one
// "Missing required field" message per response.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]

		// e.Field() is already the json tag name thanks to Init().
		switch e.Tag() {
		case "required":
			return RequiredField(e.Field())
		default:
			return InvalidField(e.Field())
		}
	}

	// Binding failures that are not field-level (e.g. malformed JSON).
	return ErrInvalidInput
}
