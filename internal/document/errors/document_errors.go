package documenterrors

import (
	"fmt"
	"net/http"

	"github.com/lifeofgurpreet/hr-document-generator/internal/shared/apperror"
)

var (
	ErrNoDocumentsSelected = apperror.New(
		apperror.CodeInvalidInput,
		"No document types selected",
		http.StatusBadRequest,
	)
	ErrTemplateNotFound = apperror.New(
		apperror.CodeTemplateMissing,
		"template not found",
		http.StatusInternalServerError,
	)
	ErrFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"File not found",
		http.StatusNotFound,
	)
)

// GenerationFailed wraps a per-document failure. The message format is
// part of the endpoint contract; docType is the identifier the client
// sent, not the resolved template key.
func GenerationFailed(docType string, err error) *apperror.AppError {
	return apperror.New(
		apperror.CodeGenerationError,
		fmt.Sprintf("Error generating %s document: %v", docType, err),
		http.StatusInternalServerError,
	)
}
