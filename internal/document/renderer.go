package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/lifeofgurpreet/hr-document-generator/internal/config"
	documenterrors "github.com/lifeofgurpreet/hr-document-generator/internal/document/errors"
)

// templateAliases maps document type identifiers to template filenames.
var templateAliases = map[string]string{
	"contract":               "contract.md",
	"confirmation":           "confirmation.md",
	"roles":                  "roles-responsibilities.md",
	"roles-responsibilities": "roles-responsibilities.md",
}

// ResolveTypeKey returns the canonical template key for a document type
// identifier ("roles" is an alias of "roles-responsibilities").
func ResolveTypeKey(docType string) string {
	if docType == "roles" {
		return "roles-responsibilities"
	}
	return docType
}

// Renderer fills templates from the templates directory. The canonical
// path evaluates the full Jinja-style language (variables, conditionals,
// loops, dotted access); missing context keys render as empty strings
// rather than failing.
type Renderer struct {
	dir string
	set *pongo2.TemplateSet
}

func NewRenderer(dir string) (*Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, fmt.Errorf("init template loader for %s: %w", dir, err)
	}
	return &Renderer{
		dir: dir,
		set: pongo2.NewSet("hr-templates", loader),
	}, nil
}

// templateFile resolves a document type or template key to a filename,
// verifying the backing file exists.
func (r *Renderer) templateFile(name string) (string, error) {
	filename, ok := templateAliases[name]
	if !ok {
		filename = name + ".md"
	}
	if _, err := os.Stat(filepath.Join(r.dir, filename)); err != nil {
		return "", documenterrors.ErrTemplateNotFound
	}
	return filename, nil
}

// TemplateText returns the raw template source, used to embed the
// document structure into generation prompts.
func (r *Renderer) TemplateText(name string) (string, error) {
	filename, err := r.templateFile(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", filename, err)
	}
	return string(data), nil
}

// Render evaluates the named template against the context.
func (r *Renderer) Render(name string, rc RenderContext) (string, error) {
	filename, err := r.templateFile(name)
	if err != nil {
		return "", err
	}
	tpl, err := r.set.FromFile(filename)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", filename, err)
	}
	out, err := tpl.Execute(pongo2.Context(rc.Map()))
	if err != nil {
		return "", fmt.Errorf("render template %s: %w", filename, err)
	}
	return out, nil
}

// legacyTokens is the fixed placeholder vocabulary of the pre-templating
// document format. Kept bit-exact for compatibility.
var legacyTokens = []string{
	"{{ employee_name }}",
	"{{ job_title }}",
	"{{ team }}",
	"{{ career_level }}",
	"{{ salary }}",
	"{{ start_date }}",
	"{{ reporting_to }}",
	"{{ work_location }}",
	"{{ employee_id }}",
	"{{ job_description }}",
	"{{ contract_date }}",
	"{{ company.name }}",
	"{{ company.registration_number }}",
}

// ReplacePlaceholders is the legacy substitution path: literal token
// replacement over text that contains plain placeholders instead of
// templating syntax. It supports no loops or conditionals.
func ReplacePlaceholders(text string, req GenerateDocumentsRequest, company config.CompanyIdentity, now time.Time) string {
	replacer := strings.NewReplacer(
		"{{ employee_name }}", req.EmployeeName,
		"{{ job_title }}", req.JobTitle,
		"{{ team }}", req.Team,
		"{{ career_level }}", req.CareerLevel,
		"{{ salary }}", req.Salary,
		"{{ start_date }}", req.StartDate,
		"{{ reporting_to }}", req.ReportingTo,
		"{{ work_location }}", req.WorkLocation,
		"{{ employee_id }}", req.EmployeeID,
		"{{ job_description }}", req.JobDescription,
		"{{ contract_date }}", now.Format(dateDisplayLayout),
		"{{ company.name }}", company.Name,
		"{{ company.registration_number }}", company.RegistrationNumber,
	)
	return replacer.Replace(text)
}

// UnresolvedTokens reports which legacy placeholder tokens survive in a
// finished document. Generated content that still carries tokens is
// rejected in favor of deterministic rendering.
func UnresolvedTokens(text string) []string {
	var leftover []string
	for _, token := range legacyTokens {
		if strings.Contains(text, token) {
			leftover = append(leftover, token)
		}
	}
	return leftover
}
