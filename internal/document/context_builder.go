package document

import (
	"strings"
	"time"

	"github.com/lifeofgurpreet/hr-document-generator/internal/config"
)

const (
	dateInputLayout   = "2006-01-02"
	dateDisplayLayout = "02/01/2006"
	filenameTimestamp = "20060102_150405"

	// defaultCareerLevel is used when the requested level has no catalog
	// entry. If that level is also missing, role fields stay empty.
	defaultCareerLevel = "Associate"
)

// RenderContext is the per-request data a template is filled from. It is
// built fresh for every document and never shared across requests.
type RenderContext struct {
	EmployeeName string
	EmployeeID   string
	JobTitle     string
	Team         string
	CareerLevel  string
	Salary       string
	StartDate    string
	EndDate      string
	ContractDate string
	ReportingTo  string
	WorkLocation string
	ContractTerm string

	Company           map[string]any
	WorkingHours      map[string]any
	OvertimePolicy    map[string]any
	LeaveEntitlements map[string]any
	Benefits          []string
	CoreValues        []string
	Termination       map[string]any

	RoleResponsibilities []string
	TeamFocusAreas       []string
	JobDescription       string
	KPIBreakdown         map[string]int
	KPIActivities        map[string]string

	ConfirmationDate    string
	EffectiveDate       string
	NextReviewDate      string
	KeyResponsibilities []string
	HRContact           map[string]any
}

// BuildContext derives the full render context from the request and the
// static configuration. now is injected so tests and batch runs can pin
// the process clock.
func BuildContext(req GenerateDocumentsRequest, cfg *config.Config, now time.Time) RenderContext {
	// Date arithmetic is calendar-accurate relative to the start date.
	// An unparsable start date degrades: the literal input is displayed
	// and the current date anchors the derived dates.
	startDisplay := req.StartDate
	dt, err := time.Parse(dateInputLayout, req.StartDate)
	if err != nil {
		dt = now
	} else {
		startDisplay = dt.Format(dateDisplayLayout)
	}

	endDate := dt.AddDate(0, 0, 365).Format(dateDisplayLayout)
	nextReviewDate := dt.AddDate(0, 0, 90).Format(dateDisplayLayout)

	roleData, ok := cfg.JobRoles.CareerLevels[req.CareerLevel]
	if !ok {
		roleData = cfg.JobRoles.CareerLevels[defaultCareerLevel]
	}
	teamData, teamFound := cfg.JobRoles.Teams[req.Team]

	kpis := normalizeKPIs(roleData.KPIBreakdown)
	activities := make(map[string]string, len(canonicalKPICategories))
	for _, category := range canonicalKPICategories {
		activities[category] = defaultKPIActivities(category)
	}

	focusAreas := req.FocusAreas
	if focusAreas == "" {
		focusAreas = strings.Join(teamData.FocusAreas, ", ")
	}
	focusAreasList := splitAndTrim(focusAreas)

	teamFocusAreas := teamData.FocusAreas
	if !teamFound {
		teamFocusAreas = focusAreasList
	}

	keyResponsibilities := roleData.Responsibilities
	if len(keyResponsibilities) > 5 {
		keyResponsibilities = keyResponsibilities[:5]
	}

	contractTerm := cfg.Company.ContractTerms.DefaultDuration
	if contractTerm == "" {
		contractTerm = "1-year full time contract"
	}

	return RenderContext{
		EmployeeName: req.EmployeeName,
		EmployeeID:   req.EmployeeID,
		JobTitle:     req.JobTitle,
		Team:         req.Team,
		CareerLevel:  req.CareerLevel,
		Salary:       req.Salary,
		StartDate:    startDisplay,
		EndDate:      endDate,
		ContractDate: startDisplay,
		ReportingTo:  req.ReportingTo,
		WorkLocation: req.WorkLocation,
		ContractTerm: contractTerm,

		Company: map[string]any{
			"name":                cfg.Company.Company.Name,
			"registration_number": cfg.Company.Company.RegistrationNumber,
		},
		WorkingHours:      cfg.Company.WorkingHours,
		OvertimePolicy:    cfg.Company.OvertimePolicy,
		LeaveEntitlements: cfg.Company.LeaveEntitlements,
		Benefits:          cfg.Company.Benefits,
		CoreValues:        cfg.Company.CoreValues,
		Termination:       cfg.Company.Termination,

		RoleResponsibilities: roleData.Responsibilities,
		TeamFocusAreas:       teamFocusAreas,
		JobDescription:       req.JobDescription,
		KPIBreakdown:         kpis,
		KPIActivities:        activities,

		ConfirmationDate:    now.Format(dateDisplayLayout),
		EffectiveDate:       startDisplay,
		NextReviewDate:      nextReviewDate,
		KeyResponsibilities: keyResponsibilities,
		HRContact: map[string]any{
			"name":  "Alan Roy Antony",
			"title": "Human Resources, Senior Associate",
			"email": "hr@mereka.my",
			"phone": "+60 3-1234 5678",
		},
	}
}

// Map flattens the context into the snake_case keys the templates use.
func (rc RenderContext) Map() map[string]any {
	return map[string]any{
		"employee_name": rc.EmployeeName,
		"employee_id":   rc.EmployeeID,
		"job_title":     rc.JobTitle,
		"team":          rc.Team,
		"career_level":  rc.CareerLevel,
		"salary":        rc.Salary,
		"start_date":    rc.StartDate,
		"end_date":      rc.EndDate,
		"contract_date": rc.ContractDate,
		"reporting_to":  rc.ReportingTo,
		"work_location": rc.WorkLocation,
		"contract_term": rc.ContractTerm,

		"company":            rc.Company,
		"working_hours":      rc.WorkingHours,
		"overtime_policy":    rc.OvertimePolicy,
		"leave_entitlements": rc.LeaveEntitlements,
		"benefits":           rc.Benefits,
		"core_values":        rc.CoreValues,
		"termination":        rc.Termination,

		"role_responsibilities": rc.RoleResponsibilities,
		"team_focus_areas":      rc.TeamFocusAreas,
		"job_description":       rc.JobDescription,
		"kpi_breakdown":         rc.KPIBreakdown,
		"vision_activities":     rc.KPIActivities["Vision"],
		"delivery_activities":   rc.KPIActivities["Delivery"],
		"financial_activities":  rc.KPIActivities["Financial"],
		"quality_activities":    rc.KPIActivities["Quality"],
		"lnd_activities":        rc.KPIActivities["LnD"],
		"ico_activities":        rc.KPIActivities["ICO"],

		"confirmation_date":    rc.ConfirmationDate,
		"effective_date":       rc.EffectiveDate,
		"next_review_date":     rc.NextReviewDate,
		"key_responsibilities": rc.KeyResponsibilities,
		"hr_contact":           rc.HRContact,
	}
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
