package events

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/umputun/tg-doorman/app/bot"
)

// RecentMessages is a TTL cache of lately seen group messages keyed by
// (sender, chat). It feeds the cleanup after ban and mute actions, so the
// window only needs to cover the time between a report and the admin's click.
type RecentMessages struct {
	cache      cache.Cache[string, []bot.Message]
	ttl        time.Duration
	maxPerUser int
	mu         sync.Mutex
}

// NewRecentMessages creates a new cache. maxKeys limits tracked (sender, chat)
// pairs, maxPerUser limits messages kept per pair.
func NewRecentMessages(ttl time.Duration, maxKeys, maxPerUser int) *RecentMessages {
	return &RecentMessages{
		cache:      cache.NewCache[string, []bot.Message]().WithMaxKeys(maxKeys).WithTTL(ttl),
		ttl:        ttl,
		maxPerUser: maxPerUser,
	}
}

// Add records a message for its (sender, chat) pair
func (r *RecentMessages) Add(msg bot.Message) {
	if msg.From.ID == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.key(msg.From.ID, msg.ChatID)
	msgs, _ := r.cache.Get(key)
	msgs = append(msgs, msg)
	if len(msgs) > r.maxPerUser {
		msgs = msgs[len(msgs)-r.maxPerUser:]
	}
	r.cache.Set(key, msgs, r.ttl)
}

// Get returns the recorded messages for a (sender, chat) pair, empty if none
func (r *RecentMessages) Get(senderID, chatID int64) []bot.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, _ := r.cache.Get(r.key(senderID, chatID))
	return msgs
}

func (r *RecentMessages) key(senderID, chatID int64) string {
	return fmt.Sprintf("%d:%d", senderID, chatID)
}
