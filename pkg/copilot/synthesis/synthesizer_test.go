package synthesis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askaprilai-be/pkg/copilot/catalog"
	"askaprilai-be/pkg/store"
)

var testTime = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func handbookInfo() map[string]string {
	return map[string]string{
		catalog.FieldBusinessName: "Sunrise Cafe",
		catalog.FieldIndustry:     "restaurant",
		catalog.FieldTeamSize:     "6-15",
		"company_values":          "Hospitality first",
	}
}

func TestBuildNewSections(t *testing.T) {
	tpl, ok := catalog.Template(catalog.TypeEmployeeHandbook)
	require.True(t, ok)

	doc := BuildNew(tpl, handbookInfo(), testTime)

	assert.Equal(t, "Sunrise Cafe - Employee Handbook", doc.Title)
	require.Len(t, doc.Sections, len(tpl.Sections))
	for i, name := range tpl.Sections {
		assert.Equal(t, name, doc.Sections[i].Title)
		assert.NotEmpty(t, doc.Sections[i].Content)
	}

	assert.Contains(t, doc.Sections[0].Content, "Welcome to Sunrise Cafe!")
	assert.Contains(t, doc.Sections[1].Content, "Restaurant/Food Service")
	assert.Contains(t, doc.Sections[1].Content, "Hospitality first")
	// Industry metadata flows into conduct and safety sections.
	assert.Contains(t, doc.Sections[3].Content, "Food safety compliance")
	assert.Contains(t, doc.Sections[5].Content, "Health department requirements")
}

func TestBuildNewPerformanceReviewThreshold(t *testing.T) {
	tpl, _ := catalog.Template(catalog.TypeEmployeeHandbook)

	small := handbookInfo()
	small[catalog.FieldTeamSize] = "6-15"
	assert.NotContains(t, BuildNew(tpl, small, testTime).Sections[2].Content, "Performance Reviews")

	large := handbookInfo()
	large[catalog.FieldTeamSize] = "16-50"
	assert.Contains(t, BuildNew(tpl, large, testTime).Sections[2].Content, "Performance Reviews")
}

func TestBuildNewUnknownIndustry(t *testing.T) {
	tpl, _ := catalog.Template(catalog.TypePolicyDocument)
	info := map[string]string{
		catalog.FieldBusinessName: "Acme",
		catalog.FieldIndustry:     "aerospace",
		catalog.FieldTeamSize:     "1-5",
	}

	doc := BuildNew(tpl, info, testTime)
	// Policy documents have no recognized section names, so every body is
	// the generic placeholder.
	for _, section := range doc.Sections {
		assert.Contains(t, section.Content, "customized based on your specific needs")
	}
}

func TestBuildNewRenditions(t *testing.T) {
	tpl, _ := catalog.Template(catalog.TypeEmployeeHandbook)
	doc := BuildNew(tpl, handbookInfo(), testTime)

	assert.Contains(t, doc.HTMLContent, "<title>Sunrise Cafe - Employee Handbook</title>")
	assert.Contains(t, doc.HTMLContent, "Sunrise Cafe")
	assert.Equal(t, len(tpl.Sections), strings.Count(doc.HTMLContent, `<div class="section">`))

	assert.Contains(t, doc.TextContent, "Sunrise Cafe - Employee Handbook\n"+strings.Repeat("=", len("Sunrise Cafe - Employee Handbook")))
	assert.Contains(t, doc.TextContent, "Welcome Message\n---------------")
}

func TestBuildImprovedGapSections(t *testing.T) {
	original := &store.UploadedDocument{
		Filename: "handbook.txt",
		Content:  strings.Repeat("original policy text ", 40),
		Analysis: &store.AnalysisReport{
			WordCount: 120,
			Sections:  []string{"INTRO", "RULES"},
			Gaps: []string{
				"Missing dress code policies",
				"Missing safety policies",
				"Missing confidentiality policies", // no remediation defined
			},
		},
	}

	doc := BuildImproved(original, testTime)

	titles := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		titles[i] = s.Title
	}
	// Remediations appear in fixed gap-check order regardless of report
	// order, bracketed by the fixed leading and trailing sections.
	assert.Equal(t, []string{
		"Document Summary",
		"Workplace Safety",
		"Dress Code and Appearance",
		"Enhanced Original Content",
		"Implementation Guidelines",
	}, titles)

	assert.Equal(t, "handbook.txt - Improved Version", doc.Title)
	assert.Contains(t, doc.Sections[0].Content, "120 words and 2 main sections")
	assert.Len(t, doc.Improvements, 5)
}

func TestBuildImprovedExcerptTruncation(t *testing.T) {
	long := strings.Repeat("x", 1200)
	doc := BuildImproved(&store.UploadedDocument{
		Filename: "old.txt",
		Content:  long,
		Analysis: &store.AnalysisReport{},
	}, testTime)

	var enhanced store.DocumentSection
	for _, s := range doc.Sections {
		if s.Title == "Enhanced Original Content" {
			enhanced = s
		}
	}
	assert.Contains(t, enhanced.Content, long[:originalExcerptLimit]+"...")
	assert.NotContains(t, enhanced.Content, long[:originalExcerptLimit+1]+".")
}

func TestBuildImprovedRenditions(t *testing.T) {
	doc := BuildImproved(&store.UploadedDocument{
		Filename: "old.txt",
		Content:  "short",
		Analysis: &store.AnalysisReport{Gaps: []string{"Missing safety policies"}},
	}, testTime)

	assert.Contains(t, doc.HTMLContent, "AI-Improved Document")
	assert.Contains(t, doc.HTMLContent, "Workplace Safety")
	assert.Contains(t, doc.TextContent, "AI-IMPROVED DOCUMENT")
	assert.Contains(t, doc.TextContent, "KEY IMPROVEMENTS MADE:")
}
