package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := New(CodeInvalidInput, "No document types selected", http.StatusBadRequest)
		assert.EqualError(t, err, "No document types selected")
	})

	t.Run("wrapped error appended", func(t *testing.T) {
		cause := errors.New("disk full")
		err := Wrap(cause, CodeInternalError, "write failed", http.StatusInternalServerError)
		assert.EqualError(t, err, "write failed: disk full")
		assert.ErrorIs(t, err, cause)
	})
}

func TestRequiredField(t *testing.T) {
	err := RequiredField("employeeName")
	assert.EqualError(t, err, "Missing required field: employeeName")
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, CodeInvalidInput, err.Code)
}

func TestMapValidationError_NonFieldError(t *testing.T) {
	err := MapValidationError(errors.New("unexpected EOF"))

	assert.Equal(t, ErrInvalidInput, err)
	httpErr := ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "The provided input is invalid", httpErr.Message)
}

func TestToHTTP(t *testing.T) {
	t.Run("app error passes through", func(t *testing.T) {
		httpErr := ToHTTP(RequiredField("salary"))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, CodeInvalidInput, httpErr.Code)
		assert.Equal(t, "Missing required field: salary", httpErr.Message)
		assert.Nil(t, httpErr.Details)
	})

	t.Run("wrapped cause surfaces as details", func(t *testing.T) {
		err := Wrap(errors.New("disk full"), CodeInternalError, "write failed", http.StatusInternalServerError)
		httpErr := ToHTTP(err)
		assert.Equal(t, "write failed", httpErr.Message)
		assert.Equal(t, "disk full", httpErr.Details)
	})

	t.Run("unknown error never leaks", func(t *testing.T) {
		httpErr := ToHTTP(errors.New("pq: connection reset"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, CodeInternalError, httpErr.Code)
		assert.Equal(t, "An unexpected error occurred", httpErr.Message)
	})
}
