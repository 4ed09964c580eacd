package synthesis

import (
	"fmt"
	"strings"

	"askaprilai-be/pkg/store"
)

const documentCSS = `        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; margin: 40px; color: #333; }
        h1 { color: #000; border-bottom: 3px solid #FFD700; padding-bottom: 10px; }
        h2 { color: #333; margin-top: 30px; }
        h3 { color: #666; }
        .header { text-align: center; margin-bottom: 40px; }
        .section { margin-bottom: 30px; padding: 20px; border-left: 4px solid #FFD700; background: #fafafa; }
        .footer { margin-top: 40px; text-align: center; font-size: 12px; color: #999; }`

const improvedCSS = documentCSS + `
        .improvement-badge { background: #e8f5e8; color: #2d6e2d; padding: 4px 8px; border-radius: 4px; font-size: 0.8rem; margin-left: 10px; }
        .analysis-summary { background: #f0f8ff; padding: 20px; border-radius: 8px; margin-bottom: 30px; border: 1px solid #b3d9ff; }
        .improvements-list { background: #fff9e6; padding: 15px; border-radius: 6px; margin: 15px 0; }`

func writeHTMLHead(b *strings.Builder, title, css string) {
	fmt.Fprintf(b, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
%s
    </style>
</head>
<body>
`, title, css)
}

func writeHTMLSections(b *strings.Builder, sections []store.DocumentSection) {
	for _, section := range sections {
		fmt.Fprintf(b, `    <div class="section">
        <h2>%s</h2>
        <div>%s</div>
    </div>
`, section.Title, strings.ReplaceAll(section.Content, "\n", "<br>"))
	}
}

func renderHTML(doc *store.GeneratedDocument) string {
	var b strings.Builder
	writeHTMLHead(&b, doc.Title, documentCSS)
	fmt.Fprintf(&b, `    <div class="header">
        <h1>%s</h1>
        <p>Generated on %s</p>
    </div>
`, doc.Title, doc.CreatedAt.Format("1/2/2006"))

	writeHTMLSections(&b, doc.Sections)

	b.WriteString(`    <div class="footer">
        <p>Document created with Ask April AI Co-Pilot</p>
        <p>This document should be reviewed by legal counsel before implementation</p>
    </div>
</body>
</html>
`)
	return b.String()
}

func renderImprovedHTML(doc *store.GeneratedDocument) string {
	var b strings.Builder
	writeHTMLHead(&b, doc.Title, improvedCSS)
	fmt.Fprintf(&b, `    <div class="header">
        <h1>%s</h1>
        <p>Generated on %s</p>
        <span class="improvement-badge">AI-Improved Document</span>
    </div>
    <div class="analysis-summary">
        <h3>Document Analysis Summary</h3>
        <p><strong>Original file:</strong> %s</p>
        <div class="improvements-list">
            <h4>Key Improvements Made:</h4>
            <ul>
`, doc.Title, doc.CreatedAt.Format("1/2/2006"), doc.OriginalFilename)

	for _, improvement := range doc.Improvements {
		fmt.Fprintf(&b, "                <li>%s</li>\n", improvement)
	}
	b.WriteString(`            </ul>
        </div>
    </div>
`)

	writeHTMLSections(&b, doc.Sections)

	b.WriteString(`    <div class="footer">
        <p>Document improved with Ask April AI Co-Pilot</p>
        <p>This document should be reviewed by legal counsel before implementation</p>
    </div>
</body>
</html>
`)
	return b.String()
}

func writeTextSections(b *strings.Builder, sections []store.DocumentSection) {
	for _, section := range sections {
		fmt.Fprintf(b, "%s\n%s\n%s\n\n", section.Title, strings.Repeat("-", len(section.Title)), section.Content)
	}
}

func renderText(doc *store.GeneratedDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", doc.Title, strings.Repeat("=", len(doc.Title)))
	fmt.Fprintf(&b, "Generated on %s\n\n", doc.CreatedAt.Format("1/2/2006"))

	writeTextSections(&b, doc.Sections)

	b.WriteString("\nDocument created with Ask April AI Co-Pilot\n")
	b.WriteString("This document should be reviewed by legal counsel before implementation\n")
	return b.String()
}

func renderImprovedText(doc *store.GeneratedDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", doc.Title, strings.Repeat("=", len(doc.Title)))
	fmt.Fprintf(&b, "Generated on %s\nAI-IMPROVED DOCUMENT\n\n", doc.CreatedAt.Format("1/2/2006"))

	fmt.Fprintf(&b, "DOCUMENT ANALYSIS SUMMARY\n%s\n", strings.Repeat("=", 25))
	fmt.Fprintf(&b, "Original file: %s\n\n", doc.OriginalFilename)

	b.WriteString("KEY IMPROVEMENTS MADE:\n")
	for i, improvement := range doc.Improvements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, improvement)
	}
	b.WriteString("\n")

	writeTextSections(&b, doc.Sections)

	b.WriteString("\nDocument improved with Ask April AI Co-Pilot\n")
	b.WriteString("This document should be reviewed by legal counsel before implementation\n")
	return b.String()
}
