package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"

	// Server errors (5xx)
	CodeTemplateMissing = "TEMPLATE_MISSING"
	CodeGenerationError = "GENERATION_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)
