package document

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lifeofgurpreet/hr-document-generator/internal/bootstrap"
	documenterrors "github.com/lifeofgurpreet/hr-document-generator/internal/document/errors"
	"github.com/lifeofgurpreet/hr-document-generator/internal/shared/apperror"
	"github.com/lifeofgurpreet/hr-document-generator/internal/shared/contextutil"
	"github.com/lifeofgurpreet/hr-document-generator/internal/shared/response"
)

type Handler struct {
	service  Service
	store    DocumentStore
	audit    bootstrap.AuditLogger
	formPage string
	logger   *zap.Logger
}

func NewHandler(service Service, store DocumentStore, audit bootstrap.AuditLogger, formPage string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("document.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.handler")
	}
	return &Handler{
		service:  service,
		store:    store,
		audit:    audit,
		formPage: formPage,
		logger:   l,
	}
}

// Generate handles POST /generate-documents.
func (h *Handler) Generate(c *gin.Context) {
	logger := contextutil.GetLogger(c.Request.Context(), h.logger)

	var req GenerateDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		logger.Warn("generate request rejected",
			zap.Int("status", httpErr.Status),
			zap.String("message", httpErr.Message),
		)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	documents, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Unexpected fault outside the error taxonomy.
			logger.Error("generate request failed unexpectedly", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "Server error: "+err.Error())
			return
		}

		httpErr := apperror.ToHTTP(err)
		logger.Warn("generate request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "DOCUMENTS_GENERATED",
		Message: "Document batch generated",
		Meta: map[string]any{
			"request_id":  contextutil.GetRequestID(c.Request.Context()),
			"employee_id": req.EmployeeID,
			"documents":   len(documents),
		},
	})

	response.Documents(c, http.StatusOK, documents)
}

// Download handles GET /download/:filename by serving the stored file.
func (h *Handler) Download(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.store.Resolve(filename)
	if err != nil {
		httpErr := apperror.ToHTTP(documenterrors.ErrFileNotFound)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	c.FileAttachment(path, filename)
}

// Index serves the operator-facing form page when it is deployed
// alongside the binary, and a JSON banner otherwise.
func (h *Handler) Index(c *gin.Context) {
	if h.formPage != "" {
		if _, err := os.Stat(h.formPage); err == nil {
			c.File(h.formPage)
			return
		}
	}
	response.Message(c, http.StatusOK, gin.H{
		"service": "hr-document-generator",
		"message": "POST /generate-documents to generate HR documents",
	})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	response.Message(c, http.StatusOK, gin.H{"status": "ok"})
}
