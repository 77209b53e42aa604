package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifeofgurpreet/hr-document-generator/internal/document"
)

type fakeBatchService struct {
	generateFn func(ctx context.Context, req document.GenerateDocumentsRequest) ([]document.GeneratedDocument, error)
}

func (f *fakeBatchService) Generate(ctx context.Context, req document.GenerateDocumentsRequest) ([]document.GeneratedDocument, error) {
	return f.generateFn(ctx, req)
}

func writeBatchCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.csv")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBatchCSV(t *testing.T) {
	t.Run("one request per row", func(t *testing.T) {
		path := writeBatchCSV(t, strings.Join([]string{
			"name,job_title,team,career_level,salary,start_date,reporting_to,work_location,employee_id,job_description,focus_areas",
			`Alan Roy Antony,Senior Associate,Mereka,Associate,RM 5000,2025-03-15,Head of People,"Mereka, PUBLIKA & Remotely",MRK-0042,Owns the HR operations stack,Learning programmes`,
			"Nadia Rahman,Manager,People & Culture,Manager,RM 9000,2025-04-01,COO,Remote,MRK-0043,Leads people operations,",
		}, "\n"))

		requests, err := loadBatchCSV(path, []string{"contract", "confirmation"})
		assert.NoError(t, err)

		assert.Len(t, requests, 2)
		assert.Equal(t, "Alan Roy Antony", requests[0].EmployeeName)
		assert.Equal(t, "Mereka, PUBLIKA & Remotely", requests[0].WorkLocation)
		assert.Equal(t, "Learning programmes", requests[0].FocusAreas)
		assert.Equal(t, []string{"contract", "confirmation"}, requests[0].Documents)
		assert.Equal(t, "Nadia Rahman", requests[1].EmployeeName)
		assert.Empty(t, requests[1].FocusAreas)
	})

	t.Run("missing column leaves field empty", func(t *testing.T) {
		path := writeBatchCSV(t, strings.Join([]string{
			"name,job_title",
			"Alan Roy Antony,Senior Associate",
		}, "\n"))

		requests, err := loadBatchCSV(path, []string{"contract"})
		assert.NoError(t, err)

		assert.Len(t, requests, 1)
		assert.Equal(t, "Alan Roy Antony", requests[0].EmployeeName)
		assert.Empty(t, requests[0].Salary)
	})

	t.Run("header only is an error", func(t *testing.T) {
		path := writeBatchCSV(t, "name,job_title\n")

		_, err := loadBatchCSV(path, []string{"contract"})
		assert.ErrorContains(t, err, "no employee rows")
	})
}

func TestRunBatch_ContinuesPastFailures(t *testing.T) {
	svc := &fakeBatchService{
		generateFn: func(ctx context.Context, req document.GenerateDocumentsRequest) ([]document.GeneratedDocument, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			return []document.GeneratedDocument{{
				Type:     "Contract",
				Filename: strings.ReplaceAll(req.EmployeeName, " ", "_") + "_contract.md",
			}}, nil
		},
	}
	requests := []document.GenerateDocumentsRequest{
		validBatchRequest("Alan Roy Antony"),
		{EmployeeName: "Broken Row", Documents: []string{"contract"}},
		validBatchRequest("Nadia Rahman"),
	}

	var out strings.Builder
	failed := runBatch(context.Background(), svc, "output", &out, requests)

	assert.Equal(t, 1, failed)
	assert.Contains(t, out.String(), "Alan Roy Antony: Contract -> output/Alan_Roy_Antony_contract.md")
	assert.Contains(t, out.String(), "Broken Row: error: Missing required field: jobTitle")
	assert.Contains(t, out.String(), "Nadia Rahman: Contract -> output/Nadia_Rahman_contract.md")
	assert.Contains(t, out.String(), "3 employees processed, 1 failed")
}

func validBatchRequest(name string) document.GenerateDocumentsRequest {
	return document.GenerateDocumentsRequest{
		EmployeeName:   name,
		JobTitle:       "Senior Associate",
		Team:           "Mereka",
		CareerLevel:    "Associate",
		Salary:         "RM 5000",
		StartDate:      "2025-03-15",
		ReportingTo:    "Head of People",
		WorkLocation:   "Remote",
		EmployeeID:     "MRK-0042",
		JobDescription: "Owns the HR operations stack",
		Documents:      []string{"contract"},
	}
}
