package memory

import (
	"time"

	"askaprilai-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository(ttl time.Duration) *ConversationRepository {
	// Expired conversations are purged every 10 minutes. The TTL shields
	// the process from unbounded growth when clients abandon a session.
	c := cache.New(ttl, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(conversation *store.Conversation) {
	r.cache.Set(conversation.ID, conversation, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(conversationID string) (*store.Conversation, bool) {
	if x, found := r.cache.Get(conversationID); found {
		return x.(*store.Conversation), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(conversationID string) {
	r.cache.Delete(conversationID)
}
