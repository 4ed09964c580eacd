package service

import (
	"context"
	"testing"
	"time"

	"askaprilai-be/internal/dto"
	"askaprilai-be/internal/repository/memory"
	"askaprilai-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSynthesisPipeline(t *testing.T) (ICopilotService, *memory.ConversationRepository) {
	t.Helper()

	repo := memory.NewConversationRepository(time.Hour)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	topic := "copilot.synthesize_document"

	consumer := NewSynthesisConsumerService(pubSub, topic, repo, 0, nil, testLogger{})
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService(topic, pubSub)
	return NewCopilotService(repo, publisher, testLogger{}), repo
}

func TestSynthesisConsumerGeneratesDocument(t *testing.T) {
	svc, repo := newTestSynthesisPipeline(t)

	started, err := svc.Start(context.Background(), &dto.StartConversationRequest{
		DocumentType: "employee-handbook",
		BusinessInfo: map[string]string{
			"business_name": "Sunrise Cafe",
			"industry":      "restaurant",
			"team_size":     "6-15",
		},
	})
	require.NoError(t, err)

	_, err = svc.Continue(context.Background(), &dto.ContinueConversationRequest{
		ConversationId: started.ConversationId,
		Answers: map[string]string{
			"specific_regulations": "Health department requirements",
			"existing_policies":    "None",
			"current_challenges":   "High turnover",
		},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		conversation, found := repo.Get(started.ConversationId)
		return found && conversation.Stage == store.StageDocumentReady
	}, 3*time.Second, 10*time.Millisecond)

	conversation, _ := repo.Get(started.ConversationId)
	require.NotNil(t, conversation.Generated)
	assert.Equal(t, "Sunrise Cafe - Employee Handbook", conversation.Generated.Title)
	assert.Len(t, conversation.Generated.Sections, 9)
	assert.NotEmpty(t, conversation.Generated.HTMLContent)
	assert.NotEmpty(t, conversation.Generated.TextContent)
}

func TestSynthesisConsumerImprovesUploadedDocument(t *testing.T) {
	svc, repo := newTestSynthesisPipeline(t)

	content := "OUR POLICIES:\nWe value attendance and punctuality above all else."
	uploaded, err := svc.StartFromUpload(context.Background(), "old-handbook.txt", content, "employee-handbook", "modernize")
	require.NoError(t, err)

	_, err = svc.Continue(context.Background(), &dto.ContinueConversationRequest{
		ConversationId: uploaded.ConversationId,
		Message:        "looks right, go ahead",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		conversation, found := repo.Get(uploaded.ConversationId)
		return found && conversation.Stage == store.StageDocumentReady
	}, 3*time.Second, 10*time.Millisecond)

	conversation, _ := repo.Get(uploaded.ConversationId)
	require.NotNil(t, conversation.Generated)
	assert.Equal(t, "old-handbook.txt - Improved Version", conversation.Generated.Title)
	assert.Equal(t, "old-handbook.txt", conversation.Generated.OriginalFilename)
	assert.NotEmpty(t, conversation.Generated.Improvements)
}
