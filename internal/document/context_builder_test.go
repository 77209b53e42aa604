package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lifeofgurpreet/hr-document-generator/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Company: config.CompanyInfo{
			Company: config.CompanyIdentity{
				Name:               "Mereka",
				RegistrationNumber: "202001012345",
			},
			Benefits:      []string{"Medical coverage"},
			CoreValues:    []string{"Learning by doing"},
			ContractTerms: config.ContractTerms{DefaultDuration: "1-year full time contract"},
		},
		JobRoles: config.JobRoles{
			CareerLevels: map[string]config.RoleDefinition{
				"Associate": {
					Responsibilities: []string{"R1", "R2", "R3", "R4", "R5", "R6"},
					KPIBreakdown: map[string]int{
						"Vision & Strategy": 10,
						"Delivery":          40,
					},
				},
				"Manager": {
					Responsibilities: []string{"Own budgets"},
					KPIBreakdown:     map[string]int{"Financial": 30},
				},
			},
			Teams: map[string]config.TeamDefinition{
				"Mereka": {FocusAreas: []string{"Maker education", "Digital skilling"}},
			},
		},
	}
}

func testRequest() GenerateDocumentsRequest {
	return GenerateDocumentsRequest{
		EmployeeName:   "Alan Roy Antony",
		JobTitle:       "Senior Associate",
		Team:           "Mereka",
		CareerLevel:    "Associate",
		Salary:         "RM 5000",
		StartDate:      "2025-03-15",
		ReportingTo:    "Head of People",
		WorkLocation:   "Mereka, PUBLIKA & Remotely",
		EmployeeID:     "MRK-0042",
		JobDescription: "Owns the HR operations stack",
		Documents:      []string{"contract"},
	}
}

func TestBuildContext_DateArithmetic(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	rc := BuildContext(testRequest(), testConfig(), now)

	assert.Equal(t, "15/03/2025", rc.StartDate)
	assert.Equal(t, "15/03/2026", rc.EndDate)
	assert.Equal(t, "13/06/2025", rc.NextReviewDate)
	assert.Equal(t, "15/03/2025", rc.ContractDate)
	assert.Equal(t, "15/03/2025", rc.EffectiveDate)
	// Stamped from the process clock, not the start date.
	assert.Equal(t, "01/01/2025", rc.ConfirmationDate)
}

func TestBuildContext_LeapYearBoundary(t *testing.T) {
	req := testRequest()
	req.StartDate = "2024-02-28"

	rc := BuildContext(req, testConfig(), time.Now())

	// 2024 is a leap year: +365 days lands on 27/02/2025.
	assert.Equal(t, "27/02/2025", rc.EndDate)
}

func TestBuildContext_UnparsableStartDate(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	req := testRequest()
	req.StartDate = "mid March"

	rc := BuildContext(req, testConfig(), now)

	// Display keeps the literal input; arithmetic anchors on now.
	assert.Equal(t, "mid March", rc.StartDate)
	assert.Equal(t, "15/03/2026", rc.EndDate)
	assert.Equal(t, "13/06/2025", rc.NextReviewDate)
}

func TestBuildContext_CareerLevelFallback(t *testing.T) {
	req := testRequest()
	req.CareerLevel = "Principal Wizard"

	rc := BuildContext(req, testConfig(), time.Now())

	// Unknown level falls back to Associate's role definition, but the
	// displayed level stays what the client sent.
	assert.Equal(t, "Principal Wizard", rc.CareerLevel)
	assert.Equal(t, []string{"R1", "R2", "R3", "R4", "R5", "R6"}, rc.RoleResponsibilities)
	assert.Equal(t, 40, rc.KPIBreakdown["Delivery"])
}

func TestBuildContext_MissingDefaultLevel(t *testing.T) {
	cfg := testConfig()
	delete(cfg.JobRoles.CareerLevels, "Associate")
	req := testRequest()
	req.CareerLevel = "Principal Wizard"

	rc := BuildContext(req, cfg, time.Now())

	// No match and no default: role fields degrade to empty, the
	// request still succeeds.
	assert.Empty(t, rc.RoleResponsibilities)
	assert.Equal(t, 0, rc.KPIBreakdown["Delivery"])
}

func TestBuildContext_TeamFallbackToFocusAreas(t *testing.T) {
	req := testRequest()
	req.Team = "Skunkworks"
	req.FocusAreas = "Rapid prototyping , Hardware labs,"

	rc := BuildContext(req, testConfig(), time.Now())

	assert.Equal(t, []string{"Rapid prototyping", "Hardware labs"}, rc.TeamFocusAreas)
}

func TestBuildContext_KnownTeamKeepsCatalogFocusAreas(t *testing.T) {
	rc := BuildContext(testRequest(), testConfig(), time.Now())

	assert.Equal(t, []string{"Maker education", "Digital skilling"}, rc.TeamFocusAreas)
}

func TestBuildContext_KeyResponsibilitiesCapped(t *testing.T) {
	rc := BuildContext(testRequest(), testConfig(), time.Now())

	assert.Len(t, rc.KeyResponsibilities, 5)
	assert.Equal(t, "R1", rc.KeyResponsibilities[0])
}

func TestBuildContext_ActivitiesForEveryCategory(t *testing.T) {
	rc := BuildContext(testRequest(), testConfig(), time.Now())

	m := rc.Map()
	for _, key := range []string{
		"vision_activities", "delivery_activities", "financial_activities",
		"quality_activities", "lnd_activities", "ico_activities",
	} {
		assert.Contains(t, m[key], "- ", "activity list %s should be bulleted", key)
	}
}
