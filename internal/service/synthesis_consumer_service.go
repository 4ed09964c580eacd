package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"askaprilai-be/internal/dto"
	"askaprilai-be/internal/pkg/logger"
	"askaprilai-be/internal/repository/memory"
	"askaprilai-be/pkg/copilot/catalog"
	"askaprilai-be/pkg/copilot/synthesis"
	"askaprilai-be/pkg/events"
	pktNats "askaprilai-be/pkg/nats"
	"askaprilai-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type ISynthesisConsumerService interface {
	Consume(ctx context.Context) error
}

type synthesisConsumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	conversations  *memory.ConversationRepository
	delay          time.Duration
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSynthesisConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	conversations *memory.ConversationRepository,
	delay time.Duration,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ISynthesisConsumerService {
	return &synthesisConsumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		conversations:  conversations,
		delay:          delay,
		eventPublisher: eventPublisher,
		logger:         log,
		inFlight:       make(map[string]struct{}),
	}
}

func (cs *synthesisConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// tryAcquire marks a conversation as being synthesized. Returns false when
// another job for the same conversation is already running.
func (cs *synthesisConsumerService) tryAcquire(conversationId string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, busy := cs.inFlight[conversationId]; busy {
		return false
	}
	cs.inFlight[conversationId] = struct{}{}
	return true
}

func (cs *synthesisConsumerService) release(conversationId string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.inFlight, conversationId)
}

func (cs *synthesisConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SynthesizeDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("SYNTHESIS", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if !cs.tryAcquire(payload.ConversationId) {
		cs.logger.Warn("SYNTHESIS", "Duplicate job dropped", map[string]interface{}{"conversation_id": payload.ConversationId})
		msg.Ack()
		return
	}
	defer cs.release(payload.ConversationId)

	// Matches the pacing of the interactive flow; the status endpoint
	// reports "generating" in the meantime.
	time.Sleep(cs.delay)

	conversation, found := cs.conversations.Get(payload.ConversationId)
	if !found {
		cs.logger.Warn("SYNTHESIS", "Conversation expired before synthesis", map[string]interface{}{"conversation_id": payload.ConversationId})
		msg.Ack()
		return
	}

	var doc *store.GeneratedDocument
	if payload.Improve {
		if conversation.OriginalDocument == nil {
			cs.logger.Error("SYNTHESIS", "Improve job without original document", map[string]interface{}{"conversation_id": conversation.ID})
			msg.Ack()
			return
		}
		doc = synthesis.BuildImproved(conversation.OriginalDocument, time.Now())
	} else {
		tpl, ok := catalog.Template(conversation.DocumentType)
		if !ok {
			cs.logger.Error("SYNTHESIS", "Unknown document type", map[string]interface{}{
				"conversation_id": conversation.ID,
				"document_type":   conversation.DocumentType,
			})
			msg.Ack()
			return
		}
		doc = synthesis.BuildNew(tpl, conversation.CollectedInfo, time.Now())
	}

	conversation.Generated = doc
	conversation.Stage = store.StageDocumentReady
	cs.conversations.Save(conversation)

	cs.logger.Info("SYNTHESIS", "Document generated", map[string]interface{}{
		"conversation_id": conversation.ID,
		"title":           doc.Title,
		"sections":        len(doc.Sections),
	})

	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "DOCUMENT_READY",
			Data: map[string]interface{}{
				"conversation_id": conversation.ID,
				"title":           doc.Title,
				"document_type":   conversation.DocumentType,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.logger.Warn("SYNTHESIS", "Failed to publish DOCUMENT_READY event", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}
