package document

import "strings"

// The six canonical KPI categories every role definition is bucketed
// into, in the order they appear on the roles & responsibilities sheet.
var canonicalKPICategories = []string{"Vision", "Delivery", "Financial", "Quality", "LnD", "ICO"}

// normalizeKPIs maps free-form KPI keys from the job-roles config onto
// the canonical categories by case-insensitive substring containment.
// Keys matching nothing are dropped; categories receiving no match stay
// at 0. Percentages are copied as-is, never renormalized.
func normalizeKPIs(breakdown map[string]int) map[string]int {
	mapping := map[string]int{
		"Vision": 0, "Delivery": 0, "Financial": 0, "Quality": 0, "LnD": 0, "ICO": 0,
	}
	for rawKey, val := range breakdown {
		key := strings.ToLower(rawKey)
		switch {
		case strings.Contains(key, "vision"):
			mapping["Vision"] = val
		case strings.Contains(key, "delivery"):
			mapping["Delivery"] = val
		case strings.Contains(key, "financial") || strings.Contains(key, "fin"):
			mapping["Financial"] = val
		case strings.Contains(key, "quality") || strings.Contains(key, "qua"):
			mapping["Quality"] = val
		case strings.Contains(key, "learning") || strings.Contains(key, "lnd"):
			mapping["LnD"] = val
		case strings.Contains(key, "internal") || strings.Contains(key, "ico") || strings.Contains(key, "communications"):
			mapping["ICO"] = val
		}
	}
	return mapping
}

// fallbackKPIActivities are the generic activity lists used when no
// AI-generated alternative exists for a category.
var fallbackKPIActivities = map[string][]string{
	"Vision": {
		"Participate in strategic planning sessions",
		"Contribute to business model development",
		"Engage in industry networking activities",
	},
	"Delivery": {
		"Execute assigned projects and deliverables",
		"Manage project communications and coordination",
		"Support community engagement initiatives",
	},
	"Financial": {
		"Assist in business development activities",
		"Support proposal writing and funding efforts",
		"Contribute to financial planning processes",
	},
	"Quality": {
		"Conduct quality checks and reviews",
		"Collect and analyze feedback data",
		"Generate performance reports",
	},
	"LnD": {
		"Attend training sessions and workshops",
		"Participate in professional development programs",
		"Engage in team feedback and review sessions",
	},
	"ICO": {
		"Utilize project management tools effectively",
		"Maintain clear communication channels",
		"Support team coordination and planning",
	},
}

// defaultKPIActivities renders the fallback activity list for a category
// as markdown bullet points.
func defaultKPIActivities(area string) string {
	activities, ok := fallbackKPIActivities[area]
	if !ok {
		activities = []string{"Perform assigned duties"}
	}
	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		lines = append(lines, "- "+a)
	}
	return strings.Join(lines, "\n")
}
