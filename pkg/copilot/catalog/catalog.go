// Package catalog holds the static document templates, question lists and
// industry metadata driving the co-pilot conversation. Immutable
// configuration data, not user data.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Question input kinds
const (
	TypeText     = "text"
	TypeTextarea = "textarea"
	TypeSelect   = "select"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Type        string   `json:"type"`
	Options     []Option `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required,omitempty"`
}

type DocumentTemplate struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	TimeEstimate string   `json:"timeEstimate"`
	Sections     []string `json:"sections"`
}

type Industry struct {
	Key              string   `json:"key"`
	Name             string   `json:"name"`
	CommonChallenges []string `json:"commonChallenges"`
	Regulations      []string `json:"regulations"`
	KeyRoles         []string `json:"keyRoles"`
}

// Document type keys
const (
	TypeEmployeeHandbook     = "employee-handbook"
	TypeTrainingProgram      = "training-program"
	TypePolicyDocument       = "policy-document"
	TypeProcessDocumentation = "process-documentation"
)

var templateOrder = []string{
	TypeEmployeeHandbook,
	TypeTrainingProgram,
	TypePolicyDocument,
	TypeProcessDocumentation,
}

var templates = map[string]DocumentTemplate{
	TypeEmployeeHandbook: {
		Key:          TypeEmployeeHandbook,
		Name:         "Employee Handbook",
		TimeEstimate: "15-30 mins",
		Sections: []string{
			"Welcome Message",
			"Company Overview",
			"Employment Policies",
			"Workplace Conduct",
			"Benefits and Compensation",
			"Safety and Security",
			"Performance Standards",
			"Progressive Discipline",
			"Employee Resources",
		},
	},
	TypeTrainingProgram: {
		Key:          TypeTrainingProgram,
		Name:         "Training Program",
		TimeEstimate: "20-45 mins",
		Sections: []string{
			"Program Overview",
			"Learning Objectives",
			"Training Schedule",
			"Core Competencies",
			"Assessment Methods",
			"Resources and Materials",
			"Progress Tracking",
			"Certification Requirements",
		},
	},
	TypePolicyDocument: {
		Key:          TypePolicyDocument,
		Name:         "Policy Document",
		TimeEstimate: "10-20 mins",
		Sections: []string{
			"Policy Statement",
			"Purpose and Scope",
			"Definitions",
			"Procedures",
			"Responsibilities",
			"Compliance Requirements",
			"Enforcement",
			"Review and Updates",
		},
	},
	TypeProcessDocumentation: {
		Key:          TypeProcessDocumentation,
		Name:         "Process Documentation",
		TimeEstimate: "15-25 mins",
		Sections: []string{
			"Process Overview",
			"Prerequisites",
			"Step-by-Step Instructions",
			"Quality Checkpoints",
			"Troubleshooting Guide",
			"Best Practices",
			"Common Mistakes",
			"Review and Approval",
		},
	},
}

var industryOrder = []string{"restaurant", "retail", "healthcare", "professional-services"}

var industries = map[string]Industry{
	"restaurant": {
		Key:              "restaurant",
		Name:             "Restaurant/Food Service",
		CommonChallenges: []string{"Food safety compliance", "High turnover", "Peak hour management", "Customer service standards"},
		Regulations:      []string{"Health department requirements", "Food handling certification", "Alcohol service laws", "Labor regulations"},
		KeyRoles:         []string{"Server", "Cook", "Host/Hostess", "Manager", "Dishwasher", "Bartender"},
	},
	"retail": {
		Key:              "retail",
		Name:             "Retail",
		CommonChallenges: []string{"Loss prevention", "Seasonal staffing", "Customer complaints", "Inventory management"},
		Regulations:      []string{"Consumer protection laws", "Return policies", "Safety regulations", "Labor standards"},
		KeyRoles:         []string{"Sales Associate", "Cashier", "Stock Associate", "Supervisor", "Manager", "Visual Merchandiser"},
	},
	"healthcare": {
		Key:              "healthcare",
		Name:             "Healthcare",
		CommonChallenges: []string{"HIPAA compliance", "Patient satisfaction", "Emergency procedures", "Staff certification"},
		Regulations:      []string{"HIPAA privacy rules", "OSHA standards", "State licensing requirements", "Patient rights"},
		KeyRoles:         []string{"Receptionist", "Medical Assistant", "Nurse", "Technician", "Administrator"},
	},
	"professional-services": {
		Key:              "professional-services",
		Name:             "Professional Services",
		CommonChallenges: []string{"Client confidentiality", "Project management", "Quality assurance", "Professional development"},
		Regulations:      []string{"Professional licensing", "Client confidentiality", "Data protection", "Industry standards"},
		KeyRoles:         []string{"Consultant", "Administrator", "Project Manager", "Analyst", "Client Relations"},
	},
}

// Answer field ids used outside the per-type question lists.
const (
	FieldBusinessName     = "business_name"
	FieldIndustry         = "industry"
	FieldTeamSize         = "team_size"
	FieldRegulations      = "specific_regulations"
	FieldExistingPolicies = "existing_policies"
	FieldImprovementGoals = "improvement_goals"
)

// Template looks up a document template by key.
func Template(key string) (DocumentTemplate, bool) {
	tpl, ok := templates[key]
	return tpl, ok
}

// TemplateKeys returns the valid document type keys in catalog order.
func TemplateKeys() []string {
	keys := make([]string, len(templateOrder))
	copy(keys, templateOrder)
	return keys
}

// IndustryFor looks up industry metadata by key.
func IndustryFor(key string) (Industry, bool) {
	ind, ok := industries[key]
	return ind, ok
}

// BasicQuestions returns the three questions every document type starts with.
func BasicQuestions() []Question {
	industryOptions := make([]Option, 0, len(industryOrder))
	for _, key := range industryOrder {
		industryOptions = append(industryOptions, Option{Value: key, Label: industries[key].Name})
	}

	return []Question{
		{
			ID:       FieldBusinessName,
			Question: "What's your business name?",
			Type:     TypeText,
			Required: true,
		},
		{
			ID:       FieldIndustry,
			Question: "What industry are you in?",
			Type:     TypeSelect,
			Options:  industryOptions,
			Required: true,
		},
		{
			ID:       FieldTeamSize,
			Question: "How many employees do you have?",
			Type:     TypeSelect,
			Options: []Option{
				{Value: "1-5", Label: "1-5 employees"},
				{Value: "6-15", Label: "6-15 employees"},
				{Value: "16-50", Label: "16-50 employees"},
				{Value: "51-100", Label: "51-100 employees"},
				{Value: "100+", Label: "More than 100 employees"},
			},
			Required: true,
		},
	}
}

// InitialQuestions returns the opening question batch for a document type:
// the basics plus any type-specific questions.
func InitialQuestions(documentType string) []Question {
	questions := BasicQuestions()

	switch documentType {
	case TypeEmployeeHandbook:
		questions = append(questions,
			Question{
				ID:          "current_challenges",
				Question:    "What are your biggest challenges with managing your team?",
				Type:        TypeTextarea,
				Placeholder: "e.g., High turnover, unclear expectations, communication issues...",
			},
			Question{
				ID:          "company_values",
				Question:    "What are your core company values? (Optional)",
				Type:        TypeTextarea,
				Placeholder: "e.g., Excellent customer service, teamwork, integrity...",
			},
		)
	case TypeTrainingProgram:
		questions = append(questions,
			Question{
				ID:       "training_role",
				Question: "What role/position is this training for?",
				Type:     TypeText,
				Required: true,
			},
			Question{
				ID:          "key_skills",
				Question:    "What are the most important skills for this role?",
				Type:        TypeTextarea,
				Placeholder: "e.g., Customer service, cash handling, product knowledge...",
			},
		)
	}

	return questions
}

// HasBasics reports whether the three required basic answers are present.
func HasBasics(collected map[string]string) bool {
	return collected[FieldBusinessName] != "" &&
		collected[FieldIndustry] != "" &&
		collected[FieldTeamSize] != ""
}

// FollowUpQuestions returns the at-most-two conditional follow-ups still
// unanswered: the industry regulation question (only for industries the
// catalog knows) and the existing-policies question. Each is asked once,
// tracked by presence of its answer key.
func FollowUpQuestions(collected map[string]string) []Question {
	var questions []Question

	if industry, ok := industries[collected[FieldIndustry]]; ok && collected[FieldRegulations] == "" {
		questions = append(questions, Question{
			ID:          FieldRegulations,
			Question:    fmt.Sprintf("Are there any specific regulations or requirements I should include for %s?", industry.Name),
			Type:        TypeTextarea,
			Placeholder: fmt.Sprintf("e.g., %s...", strings.Join(industry.Regulations[:2], ", ")),
		})
	}

	if collected[FieldExistingPolicies] == "" {
		questions = append(questions, Question{
			ID:          FieldExistingPolicies,
			Question:    "Do you have any existing policies or procedures I should incorporate?",
			Type:        TypeTextarea,
			Placeholder: "Describe any current policies you want to keep or modify...",
		})
	}

	return questions
}

// FieldIDs returns the set of answer keys the catalog accepts for a
// document type. Collected answers are restricted to this set.
func FieldIDs(documentType string) map[string]struct{} {
	ids := map[string]struct{}{
		FieldRegulations:      {},
		FieldExistingPolicies: {},
		FieldImprovementGoals: {},
	}
	for _, q := range InitialQuestions(documentType) {
		ids[q.ID] = struct{}{}
	}
	return ids
}

// TeamSizeLowerBound parses the lower bound of a team size bracket such as
// "16-50" or "100+". Returns 0 when the value is absent or unparsable.
func TeamSizeLowerBound(value string) int {
	value = strings.TrimSuffix(value, "+")
	if idx := strings.Index(value, "-"); idx >= 0 {
		value = value[:idx]
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
