package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lifeofgurpreet/hr-document-generator/internal/ai"
	"github.com/lifeofgurpreet/hr-document-generator/internal/config"
	documenterrors "github.com/lifeofgurpreet/hr-document-generator/internal/document/errors"
	"github.com/lifeofgurpreet/hr-document-generator/internal/shared/contextutil"
)

// DocumentStore persists finished documents for later download.
type DocumentStore interface {
	Save(filename, content string) error
	Resolve(filename string) (string, error)
}

type Service interface {
	Generate(ctx context.Context, req GenerateDocumentsRequest) ([]GeneratedDocument, error)
}

type service struct {
	cfg       *config.Config
	renderer  *Renderer
	generator ai.Generator
	store     DocumentStore
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	cfg *config.Config,
	renderer *Renderer,
	generator ai.Generator,
	store DocumentStore,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		cfg:       cfg,
		renderer:  renderer,
		generator: generator,
		store:     store,
		logger:    l,
		now:       time.Now,
	}
}

// Generate runs the per-request pipeline: validate, then for each
// requested type build context, attempt AI generation and fall back to
// deterministic rendering. Document types are processed strictly in
// request order; the first per-document failure aborts the whole batch
// and discards anything generated before it.
func (s *service) Generate(ctx context.Context, req GenerateDocumentsRequest) ([]GeneratedDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Request-scoped logger carries the request id when the middleware
	// chain ran; CLI invocations fall back to the service logger.
	logger := contextutil.GetLogger(ctx, s.logger)

	now := s.now()
	titleCaser := cases.Title(language.English)
	emp := toAIEmployee(req)

	var documents []GeneratedDocument
	for _, docType := range req.Documents {
		key := ResolveTypeKey(docType)

		templateText, err := s.renderer.TemplateText(key)
		if err != nil {
			logger.Warn("template resolution failed",
				zap.String("document_type", docType),
				zap.Error(err),
			)
			return nil, documenterrors.GenerationFailed(docType, err)
		}

		content, err := s.buildContent(ctx, logger, key, req, emp, templateText, now)
		if err != nil {
			logger.Error("document generation failed",
				zap.String("document_type", docType),
				zap.Error(err),
			)
			return nil, documenterrors.GenerationFailed(docType, err)
		}

		filename := documentFilename(req.EmployeeName, key, now)
		if err := s.store.Save(filename, content); err != nil {
			logger.Error("document store write failed",
				zap.String("filename", filename),
				zap.Error(err),
			)
			return nil, documenterrors.GenerationFailed(docType, err)
		}

		documents = append(documents, GeneratedDocument{
			Type:        titleCaser.String(strings.ReplaceAll(key, "-", " ")),
			Filename:    filename,
			Content:     content,
			DownloadURL: "/download/" + filename,
		})
	}

	logger.Info("batch generated",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("documents", len(documents)),
	)
	return documents, nil
}

// buildContent prefers AI-generated prose and falls back to the
// deterministic template path. Generated text still carrying placeholder
// tokens counts as a failed generation, not as output.
func (s *service) buildContent(
	ctx context.Context,
	logger *zap.Logger,
	key string,
	req GenerateDocumentsRequest,
	emp ai.Employee,
	templateText string,
	now time.Time,
) (string, error) {
	res := s.generator.Generate(ctx, key, s.cfg.Company.Company.Name, templateText, emp)
	if res.Usable() {
		if leftover := UnresolvedTokens(res.Text); len(leftover) > 0 {
			logger.Warn("generated content has unresolved placeholders, using template path",
				zap.String("document_type", key),
				zap.Strings("tokens", leftover),
			)
		} else {
			return res.Text, nil
		}
	} else if res.State == ai.Failed {
		logger.Warn("generation backend failed, using template path",
			zap.String("document_type", key),
			zap.Stringer("state", res.State),
			zap.Error(res.Err),
		)
	}

	rc := BuildContext(req, s.cfg, now)
	return s.renderer.Render(key, rc)
}

func documentFilename(employeeName, key string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.md",
		strings.ReplaceAll(employeeName, " ", "_"),
		key,
		now.Format(filenameTimestamp),
	)
}

func toAIEmployee(req GenerateDocumentsRequest) ai.Employee {
	return ai.Employee{
		Name:           req.EmployeeName,
		JobTitle:       req.JobTitle,
		Team:           req.Team,
		CareerLevel:    req.CareerLevel,
		Salary:         req.Salary,
		StartDate:      req.StartDate,
		ReportingTo:    req.ReportingTo,
		WorkLocation:   req.WorkLocation,
		ID:             req.EmployeeID,
		JobDescription: req.JobDescription,
		FocusAreas:     req.FocusAreas,
	}
}
