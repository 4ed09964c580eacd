package store

import "time"

// Conversation stages. Transitions only move forward through this sequence;
// document_analysis is entered only via the upload path.
const (
	StageGatheringInfo      = "gathering_info"
	StageDocumentAnalysis   = "document_analysis"
	StageGeneratingDocument = "generating_document"
	StageDocumentReady      = "document_ready"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in the conversation history.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalysisReport is the heuristic breakdown of an uploaded document.
type AnalysisReport struct {
	WordCount        int      `json:"wordCount"`
	Sections         []string `json:"sections"`
	Strengths        []string `json:"strengths"`
	Gaps             []string `json:"gaps"`
	ReadabilityScore string   `json:"readabilityScore"`
	ComplianceIssues []string `json:"complianceIssues"`
}

// UploadedDocument carries the original file for the improve flow.
type UploadedDocument struct {
	Filename string          `json:"filename"`
	Content  string          `json:"content"`
	Analysis *AnalysisReport `json:"analysis"`
}

// DocumentSection is one heading/body pair of a generated document.
type DocumentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GeneratedDocument is the synthesis result attached to a conversation
// once generation completes.
type GeneratedDocument struct {
	Title            string            `json:"title"`
	OriginalFilename string            `json:"originalFilename,omitempty"`
	Improvements     []string          `json:"improvements,omitempty"`
	Sections         []DocumentSection `json:"sections"`
	HTMLContent      string            `json:"htmlContent"`
	TextContent      string            `json:"textContent"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// Conversation is one in-progress document creation session held in the
// in-memory store. The record is the unit of update; last write wins.
type Conversation struct {
	ID               string             `json:"id"`
	DocumentType     string             `json:"document_type"`
	Stage            string             `json:"stage"`
	CollectedInfo    map[string]string  `json:"collected_info"`
	Messages         []Message          `json:"messages"`
	OriginalDocument *UploadedDocument  `json:"original_document,omitempty"`
	Generated        *GeneratedDocument `json:"generated,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}
