package dto

import (
	"askaprilai-be/pkg/copilot/analysis"
	"askaprilai-be/pkg/copilot/catalog"
	"askaprilai-be/pkg/store"
)

type StartConversationRequest struct {
	DocumentType string            `json:"documentType" validate:"required"`
	BusinessInfo map[string]string `json:"businessInfo"`
}

type StartConversationResponse struct {
	ConversationId string             `json:"conversationId"`
	Message        string             `json:"message"`
	Questions      []catalog.Question `json:"questions"`
	EstimatedTime  string             `json:"estimatedTime"`
	NextStep       string             `json:"nextStep"`
}

type ContinueConversationRequest struct {
	ConversationId string            `json:"conversationId" validate:"required"`
	Answers        map[string]string `json:"answers"`
	Message        string            `json:"message"`
}

type ContinueConversationResponse struct {
	Message   string                   `json:"message"`
	Questions []catalog.Question       `json:"questions,omitempty"`
	Document  *store.GeneratedDocument `json:"document,omitempty"`
	NextStep  string                   `json:"nextStep"`
	Status    string                   `json:"status,omitempty"`
}

type ConversationStatusResponse struct {
	Status                 string                   `json:"status"`
	Progress               int                      `json:"progress"`
	EstimatedTimeRemaining string                   `json:"estimatedTimeRemaining"`
	Document               *store.GeneratedDocument `json:"document,omitempty"`
	Message                string                   `json:"message,omitempty"`
}

type UploadDocumentResponse struct {
	ConversationId string                `json:"conversationId"`
	Message        string                `json:"message"`
	Analysis       *store.AnalysisReport `json:"analysis"`
	Suggestions    []analysis.Suggestion `json:"suggestions"`
	NextStep       string                `json:"nextStep"`
}

// DownloadDocument is the rendition handed to the controller for the
// download endpoint. Filename already carries the extension.
type DownloadDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}

// SynthesizeDocumentMessage is the queue payload that triggers document
// generation for a conversation.
type SynthesizeDocumentMessage struct {
	ConversationId string `json:"conversation_id"`
	Improve        bool   `json:"improve"`
}
