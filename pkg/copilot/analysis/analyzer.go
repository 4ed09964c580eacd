// Package analysis runs the fixed heuristics over an uploaded document:
// word count, header detection, policy topic coverage and structure checks.
package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"askaprilai-be/pkg/copilot/catalog"
	"askaprilai-be/pkg/store"
)

// headerPattern matches markdown headers, ALL-CAPS label lines and
// numbered headings such as "3. Scope".
var headerPattern = regexp.MustCompile(`^(#{1,6}\s+|[A-Z\s]{3,}:?$|\d+\.\s+[A-Z])`)

// policyTopics is checked in this fixed order; each topic becomes either a
// strength or a gap.
var policyTopics = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"equal opportunity", regexp.MustCompile(`(?i)equal\s+opportunity|discrimination|harassment`)},
	{"safety", regexp.MustCompile(`(?i)safety|emergency|accident|injury`)},
	{"attendance", regexp.MustCompile(`(?i)attendance|punctuality|tardiness|absent`)},
	{"dress code", regexp.MustCompile(`(?i)dress\s+code|uniform|appearance|attire`)},
	{"performance", regexp.MustCompile(`(?i)performance|evaluation|review|goals`)},
	{"benefits", regexp.MustCompile(`(?i)benefits|vacation|sick\s+leave|insurance`)},
	{"discipline", regexp.MustCompile(`(?i)discipline|termination|corrective\s+action`)},
	{"confidentiality", regexp.MustCompile(`(?i)confidential|privacy|proprietary|non-disclosure`)},
}

// handbookSections are the keywords an employee handbook is expected to
// mention somewhere in its text.
var handbookSections = []string{"welcome", "policies", "benefits", "conduct", "safety"}

const maxDetectedSections = 10

// Analyze runs the heuristic analysis over raw document text.
func Analyze(content, documentType string) *store.AnalysisReport {
	report := &store.AnalysisReport{
		WordCount:        len(strings.Fields(content)),
		Sections:         []string{},
		Strengths:        []string{},
		Gaps:             []string{},
		ReadabilityScore: "Good",
		ComplianceIssues: []string{},
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if headerPattern.MatchString(line) {
			report.Sections = append(report.Sections, line)
			if len(report.Sections) == maxDetectedSections {
				break
			}
		}
	}

	for _, topic := range policyTopics {
		if topic.pattern.MatchString(content) {
			report.Strengths = append(report.Strengths, fmt.Sprintf("Contains %s policies", topic.name))
		} else {
			report.Gaps = append(report.Gaps, fmt.Sprintf("Missing %s policies", topic.name))
		}
	}

	if len(report.Sections) >= 5 {
		report.Strengths = append(report.Strengths, "Well-structured with multiple sections")
	} else {
		report.Gaps = append(report.Gaps, "Could benefit from better organization")
	}

	if report.WordCount > 2000 {
		report.Strengths = append(report.Strengths, "Comprehensive content")
	} else if report.WordCount < 500 {
		report.Gaps = append(report.Gaps, "Document may be too brief")
	}

	if documentType == catalog.TypeEmployeeHandbook {
		lowered := strings.ToLower(content)
		var missing []string
		for _, section := range handbookSections {
			if !strings.Contains(lowered, section) {
				missing = append(missing, section)
			}
		}
		if len(missing) > 0 {
			report.Gaps = append(report.Gaps, fmt.Sprintf("Missing sections: %s", strings.Join(missing, ", ")))
		}
	}

	return report
}

// Suggestion groups related improvement items for the upload response.
type Suggestion struct {
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	Items       []string `json:"items"`
	Description string   `json:"description"`
}

// Suggestions derives grouped improvement suggestions from an analysis
// report, highest priority first.
func Suggestions(report *store.AnalysisReport) []Suggestion {
	var suggestions []Suggestion

	if len(report.Gaps) > 0 {
		items := report.Gaps
		if len(items) > 3 {
			items = items[:3]
		}
		suggestions = append(suggestions, Suggestion{
			Category:    "Content Gaps",
			Priority:    "High",
			Items:       items,
			Description: "These important topics should be added to make your document more comprehensive.",
		})
	}

	if len(report.Sections) < 5 {
		suggestions = append(suggestions, Suggestion{
			Category:    "Structure",
			Priority:    "Medium",
			Items:       []string{"Add clear section headers", "Organize content into logical sections", "Include table of contents"},
			Description: "Better organization will make your document easier to navigate and understand.",
		})
	}

	if len(report.ComplianceIssues) > 0 {
		suggestions = append(suggestions, Suggestion{
			Category:    "Legal Compliance",
			Priority:    "High",
			Items:       report.ComplianceIssues,
			Description: "These updates will help ensure your document meets current legal requirements.",
		})
	}

	suggestions = append(suggestions, Suggestion{
		Category: "Enhancements",
		Priority: "Low",
		Items: []string{
			"Update language for clarity",
			"Add industry-specific best practices",
			"Include implementation guidelines",
			"Add visual formatting improvements",
		},
		Description: "These changes will make your document more professional and user-friendly.",
	})

	return suggestions
}
