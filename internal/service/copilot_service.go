package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"askaprilai-be/internal/constant"
	"askaprilai-be/internal/dto"
	"askaprilai-be/internal/pkg/apperror"
	"askaprilai-be/internal/pkg/logger"
	"askaprilai-be/internal/repository/memory"
	"askaprilai-be/pkg/copilot/analysis"
	"askaprilai-be/pkg/copilot/catalog"
	"askaprilai-be/pkg/store"

	"github.com/google/uuid"
)

var filenameWhitespace = regexp.MustCompile(`\s+`)

type ICopilotService interface {
	Start(ctx context.Context, req *dto.StartConversationRequest) (*dto.StartConversationResponse, error)
	StartFromUpload(ctx context.Context, filename, content, documentType, improvementGoals string) (*dto.UploadDocumentResponse, error)
	Continue(ctx context.Context, req *dto.ContinueConversationRequest) (*dto.ContinueConversationResponse, error)
	Status(ctx context.Context, conversationId string) (*dto.ConversationStatusResponse, error)
	Download(ctx context.Context, conversationId, format string) (*dto.DownloadDocument, error)
}

type copilotService struct {
	conversations    *memory.ConversationRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCopilotService(
	conversations *memory.ConversationRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) ICopilotService {
	return &copilotService{
		conversations:    conversations,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *copilotService) Start(ctx context.Context, req *dto.StartConversationRequest) (*dto.StartConversationResponse, error) {
	tpl, ok := catalog.Template(req.DocumentType)
	if !ok {
		return nil, apperror.Validation("Invalid document type").WithDetails(map[string]interface{}{
			"availableTypes": catalog.TemplateKeys(),
		})
	}

	conversation := &store.Conversation{
		ID:            uuid.NewString(),
		DocumentType:  req.DocumentType,
		Stage:         store.StageGatheringInfo,
		CollectedInfo: make(map[string]string),
		CreatedAt:     time.Now(),
	}
	mergeAnswers(conversation, req.BusinessInfo)

	s.conversations.Save(conversation)

	s.logger.Info("COPILOT", "Conversation started", map[string]interface{}{
		"conversation_id": conversation.ID,
		"document_type":   conversation.DocumentType,
	})

	return &dto.StartConversationResponse{
		ConversationId: conversation.ID,
		Message:        fmt.Sprintf(constant.CopilotGreetingFormat, strings.ToLower(tpl.Name), tpl.TimeEstimate),
		Questions:      catalog.InitialQuestions(req.DocumentType),
		EstimatedTime:  tpl.TimeEstimate,
		NextStep:       constant.NextStepAnswerQuestions,
	}, nil
}

func (s *copilotService) StartFromUpload(ctx context.Context, filename, content, documentType, improvementGoals string) (*dto.UploadDocumentResponse, error) {
	if documentType == "" {
		documentType = "document-update"
	}

	report := analysis.Analyze(content, documentType)

	conversation := &store.Conversation{
		ID:           uuid.NewString(),
		DocumentType: documentType,
		Stage:        store.StageDocumentAnalysis,
		CollectedInfo: map[string]string{
			catalog.FieldImprovementGoals: improvementGoals,
		},
		OriginalDocument: &store.UploadedDocument{
			Filename: filename,
			Content:  content,
			Analysis: report,
		},
		CreatedAt: time.Now(),
	}

	s.conversations.Save(conversation)

	s.logger.Info("COPILOT", "Document uploaded for analysis", map[string]interface{}{
		"conversation_id": conversation.ID,
		"filename":        filename,
		"word_count":      report.WordCount,
	})

	return &dto.UploadDocumentResponse{
		ConversationId: conversation.ID,
		Message:        fmt.Sprintf(constant.CopilotUploadAnalyzedFormat, filename),
		Analysis:       report,
		Suggestions:    analysis.Suggestions(report),
		NextStep:       constant.NextStepReviewAnalysis,
	}, nil
}

func (s *copilotService) Continue(ctx context.Context, req *dto.ContinueConversationRequest) (*dto.ContinueConversationResponse, error) {
	conversation, found := s.conversations.Get(req.ConversationId)
	if !found {
		return nil, apperror.NotFound("Conversation not found")
	}

	mergeAnswers(conversation, req.Answers)

	if req.Message != "" {
		conversation.Messages = append(conversation.Messages, store.Message{
			Role:      store.RoleUser,
			Content:   req.Message,
			Timestamp: time.Now(),
		})
	}

	var resp *dto.ContinueConversationResponse

	switch conversation.Stage {
	case store.StageDocumentAnalysis:
		conversation.Stage = store.StageGeneratingDocument
		resp = &dto.ContinueConversationResponse{
			Message:  constant.CopilotImprovingMessage,
			NextStep: constant.NextStepDocumentGeneration,
			Status:   constant.StatusGenerating,
		}
		if err := s.enqueueSynthesis(ctx, conversation.ID, true); err != nil {
			return nil, err
		}

	case store.StageGatheringInfo:
		if !catalog.HasBasics(conversation.CollectedInfo) {
			resp = &dto.ContinueConversationResponse{
				Message:   constant.CopilotFollowUpMessage,
				Questions: catalog.BasicQuestions(),
				NextStep:  constant.NextStepAnswerQuestions,
			}
			break
		}

		if missing := catalog.FollowUpQuestions(conversation.CollectedInfo); len(missing) > 0 {
			resp = &dto.ContinueConversationResponse{
				Message:   constant.CopilotFollowUpMessage,
				Questions: missing,
				NextStep:  constant.NextStepAnswerQuestions,
			}
			break
		}

		conversation.Stage = store.StageGeneratingDocument
		resp = &dto.ContinueConversationResponse{
			Message:  constant.CopilotGeneratingMessage,
			NextStep: constant.NextStepDocumentGeneration,
			Status:   constant.StatusGenerating,
		}
		if err := s.enqueueSynthesis(ctx, conversation.ID, false); err != nil {
			return nil, err
		}

	case store.StageGeneratingDocument:
		// Generation already queued; repeat the status without enqueueing
		// a second synthesis job.
		resp = &dto.ContinueConversationResponse{
			Message:  constant.CopilotGeneratingMessage,
			NextStep: constant.NextStepDocumentGeneration,
			Status:   constant.StatusGenerating,
		}

	case store.StageDocumentReady:
		resp = &dto.ContinueConversationResponse{
			Message:  constant.CopilotDocumentReadyMessage,
			Document: conversation.Generated,
			NextStep: constant.NextStepReviewAndDownload,
		}

	default:
		return nil, apperror.NotFound("Conversation not found")
	}

	conversation.Messages = append(conversation.Messages, store.Message{
		Role:      store.RoleAssistant,
		Content:   resp.Message,
		Timestamp: time.Now(),
	})
	s.conversations.Save(conversation)

	return resp, nil
}

func (s *copilotService) Status(ctx context.Context, conversationId string) (*dto.ConversationStatusResponse, error) {
	conversation, found := s.conversations.Get(conversationId)
	if !found {
		return nil, apperror.NotFound("Conversation not found")
	}

	resp := &dto.ConversationStatusResponse{
		Status:                 conversation.Stage,
		Progress:               progressFor(conversation.Stage),
		EstimatedTimeRemaining: timeRemainingFor(conversation.Stage),
	}

	if conversation.Stage == store.StageDocumentReady {
		resp.Document = conversation.Generated
		resp.Message = constant.CopilotStatusReadyMessage
	}

	return resp, nil
}

func (s *copilotService) Download(ctx context.Context, conversationId, format string) (*dto.DownloadDocument, error) {
	conversation, found := s.conversations.Get(conversationId)
	if !found || conversation.Generated == nil {
		return nil, apperror.NotFound("Document not found")
	}

	doc := conversation.Generated
	baseName := filenameWhitespace.ReplaceAllString(doc.Title, "_")

	switch format {
	case "html":
		return &dto.DownloadDocument{
			Filename:    baseName + ".html",
			ContentType: "text/html",
			Body:        []byte(doc.HTMLContent),
		}, nil
	case "txt":
		return &dto.DownloadDocument{
			Filename:    baseName + ".txt",
			ContentType: "text/plain",
			Body:        []byte(doc.TextContent),
		}, nil
	default:
		return nil, apperror.UnsupportedFormat("Unsupported format")
	}
}

func (s *copilotService) enqueueSynthesis(ctx context.Context, conversationId string, improve bool) error {
	payload, err := json.Marshal(dto.SynthesizeDocumentMessage{
		ConversationId: conversationId,
		Improve:        improve,
	})
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}

// mergeAnswers folds submitted answers into the conversation, dropping keys
// that are not questions for the conversation's document type.
func mergeAnswers(conversation *store.Conversation, answers map[string]string) {
	if len(answers) == 0 {
		return
	}
	known := catalog.FieldIDs(conversation.DocumentType)
	for key, value := range answers {
		if _, ok := known[key]; ok {
			conversation.CollectedInfo[key] = value
		}
	}
}

func progressFor(stage string) int {
	switch stage {
	case store.StageGatheringInfo:
		return constant.ProgressGatheringInfo
	case store.StageGeneratingDocument:
		return constant.ProgressGeneratingDocument
	case store.StageDocumentReady:
		return constant.ProgressDocumentReady
	default:
		return 0
	}
}

func timeRemainingFor(stage string) string {
	switch stage {
	case store.StageGatheringInfo:
		return constant.TimeRemainingGatheringInfo
	case store.StageGeneratingDocument:
		return constant.TimeRemainingGeneratingDocument
	default:
		return constant.TimeRemainingNone
	}
}
