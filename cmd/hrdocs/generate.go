package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lifeofgurpreet/hr-document-generator/internal/ai"
	"github.com/lifeofgurpreet/hr-document-generator/internal/app"
	"github.com/lifeofgurpreet/hr-document-generator/internal/config"
	"github.com/lifeofgurpreet/hr-document-generator/internal/document"
	"github.com/lifeofgurpreet/hr-document-generator/internal/storage"
)

var (
	genReq    document.GenerateDocumentsRequest
	batchFile string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate documents for one employee or a CSV batch",
	Example: `  hrdocs generate \
    --name "Alan Roy Antony" --title "Senior Associate" --team Mereka \
    --level "Senior Associate" --salary "RM 5000" --start-date 2025-03-15 \
    --reporting-to "Head of People" --location "Mereka, PUBLIKA & Remotely" \
    --id MRK-0042 --description "Owns the HR operations stack" \
    --documents contract,confirmation,roles

  hrdocs generate --batch employees.csv --documents contract,confirmation`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genReq.EmployeeName, "name", "", "Employee full name")
	f.StringVar(&genReq.JobTitle, "title", "", "Job title")
	f.StringVar(&genReq.Team, "team", "", "Team name")
	f.StringVar(&genReq.CareerLevel, "level", "", "Career level")
	f.StringVar(&genReq.Salary, "salary", "", "Salary")
	f.StringVar(&genReq.StartDate, "start-date", "", "Start date (YYYY-MM-DD)")
	f.StringVar(&genReq.ReportingTo, "reporting-to", "", "Reporting line")
	f.StringVar(&genReq.WorkLocation, "location", "", "Work location")
	f.StringVar(&genReq.EmployeeID, "id", "", "Employee ID")
	f.StringVar(&genReq.JobDescription, "description", "", "Job description")
	f.StringVar(&genReq.FocusAreas, "focus-areas", "", "Comma-separated focus areas (optional)")
	f.StringSliceVar(&genReq.Documents, "documents", []string{"contract", "confirmation", "roles"}, "Document types to generate")
	f.StringVar(&batchFile, "batch", "", "CSV file for batch processing (one employee per row)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dirs := app.DirsFromEnv()

	cfg, err := config.Load(dirs.Config)
	if err != nil {
		return err
	}
	renderer, err := document.NewRenderer(dirs.Templates)
	if err != nil {
		return err
	}
	store, err := storage.New(dirs.Output)
	if err != nil {
		return err
	}

	svc := document.NewService(cfg, renderer, ai.NewOpenAIGenerator(cfg.Prompts), store)

	if batchFile != "" {
		requests, err := loadBatchCSV(batchFile, genReq.Documents)
		if err != nil {
			return err
		}
		runBatch(cmd.Context(), svc, store.Dir(), cmd.OutOrStdout(), requests)
		return nil
	}

	documents, err := svc.Generate(cmd.Context(), genReq)
	if err != nil {
		return err
	}

	for _, doc := range documents {
		zap.L().Info("document written",
			zap.String("type", doc.Type),
			zap.String("filename", doc.Filename),
		)
		fmt.Printf("%s -> %s/%s\n", doc.Type, store.Dir(), doc.Filename)
	}
	return nil
}

// loadBatchCSV reads one generation request per CSV row. The header row
// names the columns (name, job_title, team, career_level, salary,
// start_date, reporting_to, work_location, employee_id, job_description,
// focus_areas); unknown columns are ignored and missing ones leave the
// field empty so validation reports it per employee.
func loadBatchCSV(path string, docTypes []string) ([]document.GenerateDocumentsRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("batch file %s has no employee rows", path)
	}

	index := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		index[strings.TrimSpace(col)] = i
	}
	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	requests := make([]document.GenerateDocumentsRequest, 0, len(records)-1)
	for _, row := range records[1:] {
		requests = append(requests, document.GenerateDocumentsRequest{
			EmployeeName:   field(row, "name"),
			JobTitle:       field(row, "job_title"),
			Team:           field(row, "team"),
			CareerLevel:    field(row, "career_level"),
			Salary:         field(row, "salary"),
			StartDate:      field(row, "start_date"),
			ReportingTo:    field(row, "reporting_to"),
			WorkLocation:   field(row, "work_location"),
			EmployeeID:     field(row, "employee_id"),
			JobDescription: field(row, "job_description"),
			FocusAreas:     field(row, "focus_areas"),
			Documents:      docTypes,
		})
	}
	return requests, nil
}

// runBatch generates documents for every employee, continuing past
// per-employee failures. Returns the number of failed employees.
func runBatch(ctx context.Context, svc document.Service, outDir string, out io.Writer, requests []document.GenerateDocumentsRequest) int {
	failed := 0
	for _, req := range requests {
		docs, err := svc.Generate(ctx, req)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: error: %v\n", req.EmployeeName, err)
			continue
		}
		for _, doc := range docs {
			fmt.Fprintf(out, "%s: %s -> %s/%s\n", req.EmployeeName, doc.Type, outDir, doc.Filename)
		}
	}
	fmt.Fprintf(out, "%d employees processed, %d failed\n", len(requests), failed)
	return failed
}
