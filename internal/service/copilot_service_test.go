package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"askaprilai-be/internal/constant"
	"askaprilai-be/internal/dto"
	"askaprilai-be/internal/pkg/apperror"
	"askaprilai-be/internal/repository/memory"
	"askaprilai-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

func newTestCopilotService() (ICopilotService, *memory.ConversationRepository, *recordingPublisher) {
	repo := memory.NewConversationRepository(time.Hour)
	pub := &recordingPublisher{}
	return NewCopilotService(repo, pub, testLogger{}), repo, pub
}

func TestCopilotStart(t *testing.T) {
	svc, repo, _ := newTestCopilotService()

	res, err := svc.Start(context.Background(), &dto.StartConversationRequest{
		DocumentType: "employee-handbook",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ConversationId)
	assert.Contains(t, res.Message, "employee handbook")
	assert.Contains(t, res.Message, "15-30 mins")
	assert.Equal(t, "15-30 mins", res.EstimatedTime)
	assert.Equal(t, constant.NextStepAnswerQuestions, res.NextStep)
	assert.Len(t, res.Questions, 5)

	conversation, found := repo.Get(res.ConversationId)
	require.True(t, found)
	assert.Equal(t, store.StageGatheringInfo, conversation.Stage)
	assert.Empty(t, conversation.Messages)
}

func TestCopilotStartInvalidDocumentType(t *testing.T) {
	svc, _, _ := newTestCopilotService()

	_, err := svc.Start(context.Background(), &dto.StartConversationRequest{
		DocumentType: "novel",
	})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Details, "availableTypes")
}

func TestCopilotStartSeedsBusinessInfo(t *testing.T) {
	svc, repo, _ := newTestCopilotService()

	res, err := svc.Start(context.Background(), &dto.StartConversationRequest{
		DocumentType: "policy-document",
		BusinessInfo: map[string]string{
			"business_name": "Sunrise Cafe",
			"favorite_food": "pizza",
		},
	})
	require.NoError(t, err)

	conversation, found := repo.Get(res.ConversationId)
	require.True(t, found)
	assert.Equal(t, "Sunrise Cafe", conversation.CollectedInfo["business_name"])
	_, ok := conversation.CollectedInfo["favorite_food"]
	assert.False(t, ok, "unknown answer keys must be dropped")
}

func TestCopilotContinueReAsksBasics(t *testing.T) {
	svc, _, pub := newTestCopilotService()

	started, err := svc.Start(context.Background(), &dto.StartConversationRequest{DocumentType: "policy-document"})
	require.NoError(t, err)

	res, err := svc.Continue(context.Background(), &dto.ContinueConversationRequest{
		ConversationId: started.ConversationId,
		Answers:        map[string]string{"business_name": "Sunrise Cafe"},
	})
	require.NoError(t, err)

	assert.Equal(t, constant.NextStepAnswerQuestions, res.NextStep)
	assert.Len(t, res.Questions, 3, "all basic questions are re-asked until complete")
	assert.Zero(t, pub.count(), "no synthesis job before the basics are complete")
}

func TestCopilotContinueFollowUpsThenGenerate(t *testing.T) {
	svc, repo, pub := newTestCopilotService()

	started, err := svc.Start(context.Background(), &dto.StartConversationRequest{DocumentType: "policy-document"})
	require.NoError(t, err)

	res, err := svc.Continue(context.Background(), &dto.ContinueConversationRequest{
		ConversationId: started.ConversationId,
		Answers: map[string]string{
			"business_name": "Sunrise Cafe",
			"industry":      "restaurant",
			"team_size":     "6-15",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, constant.NextStepAnswerQuestions, res.NextStep)
	require.Len(t, res.Questions, 2)
	assert.Equal(t, "specific_regulations", res.Questions[0].ID)
	assert.Equal(t, "existing_policies", res.Questions[1].ID)
	assert.Zero(t, pub.count())

	res, err = svc.Continue(context.Background(), &dto.ContinueConversationRequest{
		ConversationId: started.ConversationId,
		Answers: map[string]string{
			"specific_regulations": "Health department requirements",
			"existing_policies":    "None",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, constant.CopilotGeneratingMessage, res.Message)
	assert.Equal(t, constant.NextStepDocumentGeneration, res.NextStep)
	assert.Equal(t, constant.StatusGenerating, res.Status)
	assert.Equal(t, 1, pub.count())

	conversation, found := repo.Get(started.ConversationId)
	require.True(t, found)
	assert.Equal(t, store.StageGeneratingDocument, conversation.Stage)

	// Another continue must not queue a second job.
	res, err = svc.Continue(context.Background(), &dto.ContinueConversationRequest{
		ConversationId: started.ConversationId,
		Message:        "are we there yet?",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.StatusGenerating, res.Status)
	assert.Equal(t, 1, pub.count())
}

func TestCopilotContinueAppendsMessages(t *testing.T) {
	svc, repo, _ := newTestCopilotService()

	started, err := svc.Start(context.Background(), &dto.StartConversationRequest{DocumentType: "policy-document"})
	require.NoError(t, err)

	_, err = svc.Continue(context.Background(), &dto.ContinueConversationRequest{
		ConversationId: started.ConversationId,
		Message:        "here you go",
		Answers:        map[string]string{"business_name": "Sunrise Cafe"},
	})
	require.NoError(t, err)

	conversation, found := repo.Get(started.ConversationId)
	require.True(t, found)
	require.Len(t, conversation.Messages, 2)
	assert.Equal(t, store.RoleUser, conversation.Messages[0].Role)
	assert.Equal(t, "here you go", conversation.Messages[0].Content)
	assert.Equal(t, store.RoleAssistant, conversation.Messages[1].Role)
}

func TestCopilotContinueUnknownConversation(t *testing.T) {
	svc, _, _ := newTestCopilotService()

	_, err := svc.Continue(context.Background(), &dto.ContinueConversationRequest{ConversationId: "missing"})
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}

func TestCopilotUploadFlow(t *testing.T) {
	svc, repo, pub := newTestCopilotService()

	content := "EMPLOYEE SAFETY:\nAll staff follow safety and attendance rules every day."
	res, err := svc.StartFromUpload(context.Background(), "handbook.txt", content, "", "make it compliant")
	require.NoError(t, err)

	assert.Contains(t, res.Message, "handbook.txt")
	assert.Equal(t, constant.NextStepReviewAnalysis, res.NextStep)
	require.NotNil(t, res.Analysis)
	assert.NotEmpty(t, res.Suggestions)

	conversation, found := repo.Get(res.ConversationId)
	require.True(t, found)
	assert.Equal(t, store.StageDocumentAnalysis, conversation.Stage)
	assert.Equal(t, "document-update", conversation.DocumentType)
	assert.Equal(t, "make it compliant", conversation.CollectedInfo["improvement_goals"])
	require.NotNil(t, conversation.OriginalDocument)

	cont, err := svc.Continue(context.Background(), &dto.ContinueConversationRequest{
		ConversationId: res.ConversationId,
	})
	require.NoError(t, err)
	assert.Equal(t, constant.CopilotImprovingMessage, cont.Message)
	assert.Equal(t, constant.StatusGenerating, cont.Status)
	assert.Equal(t, 1, pub.count())
}

func TestCopilotStatusProgression(t *testing.T) {
	svc, repo, _ := newTestCopilotService()

	started, err := svc.Start(context.Background(), &dto.StartConversationRequest{DocumentType: "training-program"})
	require.NoError(t, err)

	status, err := svc.Status(context.Background(), started.ConversationId)
	require.NoError(t, err)
	assert.Equal(t, store.StageGatheringInfo, status.Status)
	assert.Equal(t, 25, status.Progress)
	assert.Equal(t, "5-10 minutes", status.EstimatedTimeRemaining)
	assert.Nil(t, status.Document)

	conversation, _ := repo.Get(started.ConversationId)
	conversation.Stage = store.StageGeneratingDocument
	repo.Save(conversation)

	status, err = svc.Status(context.Background(), started.ConversationId)
	require.NoError(t, err)
	assert.Equal(t, 75, status.Progress)
	assert.Equal(t, "2-3 minutes", status.EstimatedTimeRemaining)

	conversation.Stage = store.StageDocumentReady
	conversation.Generated = &store.GeneratedDocument{Title: "Sunrise Cafe - Training Program"}
	repo.Save(conversation)

	status, err = svc.Status(context.Background(), started.ConversationId)
	require.NoError(t, err)
	assert.Equal(t, 100, status.Progress)
	assert.Equal(t, "0 minutes", status.EstimatedTimeRemaining)
	assert.Equal(t, constant.CopilotStatusReadyMessage, status.Message)
	require.NotNil(t, status.Document)
}

func TestCopilotDownload(t *testing.T) {
	svc, repo, _ := newTestCopilotService()

	started, err := svc.Start(context.Background(), &dto.StartConversationRequest{DocumentType: "employee-handbook"})
	require.NoError(t, err)

	conversation, _ := repo.Get(started.ConversationId)
	conversation.Stage = store.StageDocumentReady
	conversation.Generated = &store.GeneratedDocument{
		Title:       "Sunrise Cafe - Employee Handbook",
		HTMLContent: "<html>doc</html>",
		TextContent: "doc",
	}
	repo.Save(conversation)

	tests := []struct {
		name         string
		format       string
		wantFilename string
		wantType     string
		wantBody     string
	}{
		{"html", "html", "Sunrise_Cafe_-_Employee_Handbook.html", "text/html", "<html>doc</html>"},
		{"txt", "txt", "Sunrise_Cafe_-_Employee_Handbook.txt", "text/plain", "doc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Download(context.Background(), started.ConversationId, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFilename, res.Filename)
			assert.Equal(t, tt.wantType, res.ContentType)
			assert.Equal(t, tt.wantBody, string(res.Body))
		})
	}

	_, err = svc.Download(context.Background(), started.ConversationId, "pdf")
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindUnsupportedFormat, appErr.Kind)

	_, err = svc.Download(context.Background(), "missing", "html")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}

func TestCopilotDownloadBeforeReady(t *testing.T) {
	svc, _, _ := newTestCopilotService()

	started, err := svc.Start(context.Background(), &dto.StartConversationRequest{DocumentType: "employee-handbook"})
	require.NoError(t, err)

	_, err = svc.Download(context.Background(), started.ConversationId, "html")
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}
