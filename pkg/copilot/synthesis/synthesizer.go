// Package synthesis template-fills generated documents from collected
// answers and analysis results, and renders HTML and plain-text output.
package synthesis

import (
	"fmt"
	"strings"
	"time"

	"askaprilai-be/pkg/copilot/catalog"
	"askaprilai-be/pkg/store"
)

// sectionTag enumerates the section bodies the synthesizer knows how to
// generate. Unknown section names map to tagGeneric.
type sectionTag int

const (
	tagGeneric sectionTag = iota
	tagWelcome
	tagOverview
	tagEmployment
	tagConduct
	tagSafety
)

var sectionTags = map[string]sectionTag{
	"Welcome Message":     tagWelcome,
	"Company Overview":    tagOverview,
	"Employment Policies": tagEmployment,
	"Workplace Conduct":   tagConduct,
	"Safety and Security": tagSafety,
}

// performanceReviewTeamSize is the team-size lower bound above which the
// employment policies section gains a performance review paragraph.
const performanceReviewTeamSize = 15

// originalExcerptLimit bounds the original-content excerpt in improved
// documents.
const originalExcerptLimit = 500

// BuildNew synthesizes a document for the new-document path from the
// template's section list and the collected answers.
func BuildNew(tpl catalog.DocumentTemplate, info map[string]string, now time.Time) *store.GeneratedDocument {
	industry, _ := catalog.IndustryFor(info[catalog.FieldIndustry])

	doc := &store.GeneratedDocument{
		Title:     fmt.Sprintf("%s - %s", info[catalog.FieldBusinessName], tpl.Name),
		CreatedAt: now,
	}

	for _, name := range tpl.Sections {
		doc.Sections = append(doc.Sections, store.DocumentSection{
			Title:   name,
			Content: sectionBody(sectionTags[name], info, industry),
		})
	}

	doc.HTMLContent = renderHTML(doc)
	doc.TextContent = renderText(doc)
	return doc
}

func sectionBody(tag sectionTag, info map[string]string, industry catalog.Industry) string {
	business := info[catalog.FieldBusinessName]

	switch tag {
	case tagWelcome:
		return fmt.Sprintf("Welcome to %s! We're excited to have you join our team. This handbook will guide you through our policies, procedures, and expectations to help you succeed in your role.", business)
	case tagOverview:
		industryName := industry.Name
		if industryName == "" {
			industryName = "business"
		}
		values := "We believe in teamwork, excellence, and continuous improvement."
		if v := info["company_values"]; v != "" {
			values = fmt.Sprintf("Our core values include: %s", v)
		}
		return fmt.Sprintf("%s is a %s dedicated to providing excellent service to our customers. %s", business, industryName, values)
	case tagEmployment:
		return employmentPolicies(info)
	case tagConduct:
		return workplaceConduct(info, industry)
	case tagSafety:
		return safetyPolicies(info, industry)
	default:
		return "This section will be customized based on your specific needs and industry requirements."
	}
}

func employmentPolicies(info map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `## Equal Opportunity Employment
%s is an equal opportunity employer committed to creating an inclusive environment for all employees.

## Work Schedule
Work schedules will be provided in advance and may vary based on business needs.`, info[catalog.FieldBusinessName])

	if catalog.TeamSizeLowerBound(info[catalog.FieldTeamSize]) > performanceReviewTeamSize {
		b.WriteString(`

## Performance Reviews
Regular performance evaluations will be conducted to support your professional development.`)
	}

	return b.String()
}

func workplaceConduct(info map[string]string, industry catalog.Industry) string {
	var b strings.Builder
	fmt.Fprintf(&b, `## Professional Behavior
All employees are expected to maintain professional conduct that reflects positively on %s.

## Communication
Clear, respectful communication is essential for our team's success.`, info[catalog.FieldBusinessName])

	if len(industry.CommonChallenges) >= 2 {
		fmt.Fprintf(&b, `

## Industry-Specific Standards
Given our work in %s, special attention should be paid to: %s.`, industry.Name, strings.Join(industry.CommonChallenges[:2], ", "))
	}

	return b.String()
}

func safetyPolicies(info map[string]string, industry catalog.Industry) string {
	var b strings.Builder
	fmt.Fprintf(&b, `## General Safety
The safety of our employees and customers is our top priority at %s.

## Emergency Procedures
All employees should be familiar with emergency exits and procedures.`, info[catalog.FieldBusinessName])

	if len(industry.Regulations) >= 2 {
		fmt.Fprintf(&b, `

## Regulatory Compliance
We must comply with all relevant regulations including: %s.`, strings.Join(industry.Regulations[:2], ", "))
	}

	return b.String()
}

// gapRemediations pairs each detectable gap with its canned remediation
// section, in the fixed order they are emitted.
var gapRemediations = []struct {
	gap     string
	title   string
	content string
}{
	{
		gap:     "Missing equal opportunity policies",
		title:   "Equal Opportunity Employment",
		content: "We are an equal opportunity employer committed to creating an inclusive environment for all employees. We do not discriminate based on race, religion, color, national origin, gender, sexual orientation, age, marital status, veteran status, or disability status.",
	},
	{
		gap:     "Missing safety policies",
		title:   "Workplace Safety",
		content: "The safety of our employees and customers is our top priority. All employees must follow safety protocols, report hazards immediately, and participate in safety training programs. Emergency procedures are posted throughout the workplace.",
	},
	{
		gap:     "Missing attendance policies",
		title:   "Attendance and Punctuality",
		content: "Regular attendance and punctuality are essential for business operations. Employees are expected to arrive on time and ready to work. Excessive absences or tardiness may result in disciplinary action.",
	},
	{
		gap:     "Missing dress code policies",
		title:   "Dress Code and Appearance",
		content: "Employees are expected to maintain a professional appearance appropriate for their role and our business environment. Specific dress code requirements will be provided during orientation.",
	},
	{
		gap:     "Missing performance policies",
		title:   "Performance Standards and Reviews",
		content: "We believe in supporting employee growth through regular feedback and performance reviews. Performance expectations will be clearly communicated, and employees will receive ongoing coaching and development opportunities.",
	},
}

var improvementsMade = []string{
	"Updated formatting and structure",
	"Added missing policy sections",
	"Enhanced legal compliance language",
	"Improved readability and clarity",
	"Added industry-specific best practices",
}

// BuildImproved synthesizes a document for the improve-existing path from
// the uploaded original and its analysis report.
func BuildImproved(original *store.UploadedDocument, now time.Time) *store.GeneratedDocument {
	report := original.Analysis

	doc := &store.GeneratedDocument{
		Title:            fmt.Sprintf("%s - Improved Version", original.Filename),
		OriginalFilename: original.Filename,
		Improvements:     improvementsMade,
		CreatedAt:        now,
	}

	doc.Sections = append(doc.Sections, store.DocumentSection{
		Title: "Document Summary",
		Content: fmt.Sprintf("This is an improved version of your original %s. The original document had %d words and %d main sections.",
			original.Filename, report.WordCount, len(report.Sections)),
	})

	flagged := make(map[string]struct{}, len(report.Gaps))
	for _, gap := range report.Gaps {
		flagged[gap] = struct{}{}
	}
	for _, rem := range gapRemediations {
		if _, ok := flagged[rem.gap]; ok {
			doc.Sections = append(doc.Sections, store.DocumentSection{Title: rem.title, Content: rem.content})
		}
	}

	excerpt := original.Content
	if len(excerpt) > originalExcerptLimit {
		excerpt = excerpt[:originalExcerptLimit]
	}
	doc.Sections = append(doc.Sections, store.DocumentSection{
		Title: "Enhanced Original Content",
		Content: "The following sections have been updated and improved from your original document:\n\n" +
			excerpt + "...\n\n[Content has been reformatted and enhanced for clarity and compliance]",
	})

	doc.Sections = append(doc.Sections, store.DocumentSection{
		Title: "Implementation Guidelines",
		Content: "To successfully implement this updated document:\n\n" +
			"• Review all sections with your management team\n" +
			"• Customize any sections to fit your specific needs\n" +
			"• Have the document reviewed by legal counsel\n" +
			"• Communicate changes to all employees\n" +
			"• Provide training on new policies\n" +
			"• Set a regular review schedule for updates",
	})

	doc.HTMLContent = renderImprovedHTML(doc)
	doc.TextContent = renderImprovedText(doc)
	return doc
}
