package document

import (
	documenterrors "github.com/lifeofgurpreet/hr-document-generator/internal/document/errors"
	"github.com/lifeofgurpreet/hr-document-generator/internal/shared/apperror"
)

// GenerateDocumentsRequest is the payload of POST /generate-documents.
// Field names are camelCase for compatibility with the existing HR form.
type GenerateDocumentsRequest struct {
	EmployeeName   string   `json:"employeeName" binding:"required"`
	JobTitle       string   `json:"jobTitle" binding:"required"`
	Team           string   `json:"team" binding:"required"`
	CareerLevel    string   `json:"careerLevel" binding:"required"`
	Salary         string   `json:"salary" binding:"required"`
	StartDate      string   `json:"startDate" binding:"required"`
	ReportingTo    string   `json:"reportingTo" binding:"required"`
	WorkLocation   string   `json:"workLocation" binding:"required"`
	EmployeeID     string   `json:"employeeId" binding:"required"`
	JobDescription string   `json:"jobDescription" binding:"required"`
	FocusAreas     string   `json:"focusAreas"`
	Documents      []string `json:"documents"`
}

// requiredFields pairs each mandatory value with its wire name, in the
// order validation errors must be reported.
func (r GenerateDocumentsRequest) requiredFields() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"employeeName", r.EmployeeName},
		{"jobTitle", r.JobTitle},
		{"team", r.Team},
		{"careerLevel", r.CareerLevel},
		{"salary", r.Salary},
		{"startDate", r.StartDate},
		{"reportingTo", r.ReportingTo},
		{"workLocation", r.WorkLocation},
		{"employeeId", r.EmployeeID},
		{"jobDescription", r.JobDescription},
	}
}

// Validate enforces the endpoint's field requirements. Gin binding covers
// the HTTP path already; this keeps the CLI path on the same contract.
func (r GenerateDocumentsRequest) Validate() error {
	for _, f := range r.requiredFields() {
		if f.value == "" {
			return apperror.RequiredField(f.name)
		}
	}
	if len(r.Documents) == 0 {
		return documenterrors.ErrNoDocumentsSelected
	}
	return nil
}

// GeneratedDocument is one finished document in the response batch.
type GeneratedDocument struct {
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	DownloadURL string `json:"download_url"`
}
