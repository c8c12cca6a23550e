package events

import (
	"fmt"
	"sync"
	"sync/atomic"

	tbapi "github.com/OvyFlash/telegram-bot-api"
)

// identityCache caches the bot's own identity fetched from telegram.
// The fetch is lazy and single-flight, a failed fetch leaves the cache empty
// so the next caller retries.
type identityCache struct {
	tbAPI TbAPI
	mu    sync.Mutex
	user  atomic.Pointer[tbapi.User]
}

func newIdentityCache(tbAPI TbAPI) *identityCache {
	return &identityCache{tbAPI: tbAPI}
}

// me returns the bot's own user, fetching it once on first use
func (c *identityCache) me() (tbapi.User, error) {
	if u := c.user.Load(); u != nil {
		return *u, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if u := c.user.Load(); u != nil { // re-check, another caller may have filled it
		return *u, nil
	}

	u, err := c.tbAPI.GetMe()
	if err != nil {
		return tbapi.User{}, fmt.Errorf("failed to get bot identity: %w", err)
	}
	c.user.Store(&u)
	return u, nil
}
