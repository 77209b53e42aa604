package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config bundles everything loaded from the config directory at startup.
// It is read-only after Load and passed explicitly to every component;
// nothing reads it through package-level state.
type Config struct {
	Company  CompanyInfo
	JobRoles JobRoles
	Prompts  Prompts
}

// CompanyInfo mirrors config/company-info.json. Sections the code never
// inspects (policies, entitlements) stay semi-structured because only the
// templates consume them.
type CompanyInfo struct {
	Company           CompanyIdentity `json:"company"`
	WorkingHours      map[string]any  `json:"working_hours"`
	OvertimePolicy    map[string]any  `json:"overtime_policy"`
	LeaveEntitlements map[string]any  `json:"leave_entitlements"`
	Benefits          []string        `json:"benefits"`
	CoreValues        []string        `json:"core_values"`
	Termination       map[string]any  `json:"termination"`
	ContractTerms     ContractTerms   `json:"contract_terms"`
}

type CompanyIdentity struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
}

type ContractTerms struct {
	DefaultDuration string `json:"default_duration"`
}

// JobRoles mirrors config/job-roles.json.
type JobRoles struct {
	CareerLevels map[string]RoleDefinition `json:"career_levels"`
	Teams        map[string]TeamDefinition `json:"teams"`
}

type RoleDefinition struct {
	Responsibilities []string       `json:"responsibilities"`
	KPIBreakdown     map[string]int `json:"kpi_breakdown"`
}

type TeamDefinition struct {
	FocusAreas []string `json:"focus_areas"`
}

// Prompts mirrors config/ai-prompts.json. Each entry is a prompt template
// keyed by variant name, with {placeholder} slots filled at call time.
type Prompts struct {
	ContractGeneration    map[string]string `json:"contract_generation"`
	ConfirmationLetter    map[string]string `json:"confirmation_letter"`
	RolesResponsibilities map[string]string `json:"roles_responsibilities"`
}

// Load reads the three config files from dir. Any missing or malformed
// file is a startup failure; the service refuses to run half-configured.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	if err := loadJSON(filepath.Join(dir, "company-info.json"), &cfg.Company); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, "job-roles.json"), &cfg.JobRoles); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, "ai-prompts.json"), &cfg.Prompts); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
