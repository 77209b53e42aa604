package ai

import (
	"strings"

	"github.com/lifeofgurpreet/hr-document-generator/internal/config"
)

// Employee is the subset of the request the generation backend sees.
type Employee struct {
	Name           string
	JobTitle       string
	Team           string
	CareerLevel    string
	Salary         string
	StartDate      string
	ReportingTo    string
	WorkLocation   string
	ID             string
	JobDescription string
	FocusAreas     string
}

const systemPrompt = "You are an HR document generator. Generate professional, complete documents based on the provided template and employee data."

// documentPrompt selects and fills the configured prompt template for a
// document type. Prompt slots use {name} markers.
func documentPrompt(prompts config.Prompts, docType, companyName string, emp Employee) string {
	focusAreas := emp.FocusAreas
	if focusAreas == "" {
		focusAreas = "various areas"
	}

	switch docType {
	case "contract":
		return fillSlots(prompts.ContractGeneration["job_description"], map[string]string{
			"role":             emp.JobTitle,
			"company_name":     companyName,
			"team":             emp.Team,
			"responsibilities": emp.JobDescription,
		})
	case "confirmation":
		return fillSlots(prompts.ConfirmationLetter["personalized"], map[string]string{
			"employee_name": emp.Name,
			"role":          emp.JobTitle,
			"company_name":  companyName,
		})
	case "roles", "roles-responsibilities":
		return fillSlots(prompts.RolesResponsibilities["main_description"], map[string]string{
			"career_level": emp.CareerLevel,
			"team":         emp.Team,
			"focus_areas":  focusAreas,
		})
	default:
		return ""
	}
}

func fillSlots(tmpl string, slots map[string]string) string {
	for name, value := range slots {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", value)
	}
	return tmpl
}

// BuildPrompt assembles the full instruction: the document-type prompt,
// the template structure to follow, and the employee data block.
func BuildPrompt(prompts config.Prompts, docType, companyName, templateText string, emp Employee) string {
	focusAreas := emp.FocusAreas
	if focusAreas == "" {
		focusAreas = "Various areas"
	}

	var sb strings.Builder
	sb.WriteString(documentPrompt(prompts, docType, companyName, emp))
	sb.WriteString("\n\nPlease use the following template structure and fill in the placeholders with the provided employee data:\n\n")
	sb.WriteString(templateText)
	sb.WriteString("\n\nEmployee Data:\n")
	sb.WriteString("- Name: " + emp.Name + "\n")
	sb.WriteString("- Job Title: " + emp.JobTitle + "\n")
	sb.WriteString("- Team: " + emp.Team + "\n")
	sb.WriteString("- Career Level: " + emp.CareerLevel + "\n")
	sb.WriteString("- Salary: " + emp.Salary + "\n")
	sb.WriteString("- Start Date: " + emp.StartDate + "\n")
	sb.WriteString("- Reporting To: " + emp.ReportingTo + "\n")
	sb.WriteString("- Work Location: " + emp.WorkLocation + "\n")
	sb.WriteString("- Employee ID: " + emp.ID + "\n")
	sb.WriteString("- Job Description: " + emp.JobDescription + "\n")
	sb.WriteString("- Focus Areas: " + focusAreas + "\n")
	sb.WriteString("\nGenerate a complete, professional document that fills in all the template placeholders with the provided data.\n")
	return sb.String()
}
