package events

import (
	"errors"
	"sync"
	"testing"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-doorman/app/events/mocks"
)

func TestIdentityCache_FetchOnce(t *testing.T) {
	mockAPI := &mocks.TbAPIMock{
		GetMeFunc: func() (tbapi.User, error) {
			return tbapi.User{ID: 42, UserName: "doorman_bot"}, nil
		},
	}
	c := newIdentityCache(mockAPI)

	for i := 0; i < 3; i++ {
		u, err := c.me()
		require.NoError(t, err)
		assert.Equal(t, int64(42), u.ID)
	}
	assert.Equal(t, 1, len(mockAPI.GetMeCalls()), "identity fetched only once")
}

func TestIdentityCache_RetryAfterFailure(t *testing.T) {
	calls := 0
	mockAPI := &mocks.TbAPIMock{
		GetMeFunc: func() (tbapi.User, error) {
			calls++
			if calls == 1 {
				return tbapi.User{}, errors.New("network down")
			}
			return tbapi.User{ID: 42}, nil
		},
	}
	c := newIdentityCache(mockAPI)

	_, err := c.me()
	require.ErrorContains(t, err, "network down")

	u, err := c.me()
	require.NoError(t, err, "second attempt retries the fetch")
	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, 2, len(mockAPI.GetMeCalls()))
}

func TestIdentityCache_Concurrent(t *testing.T) {
	mockAPI := &mocks.TbAPIMock{
		GetMeFunc: func() (tbapi.User, error) {
			return tbapi.User{ID: 42}, nil
		},
	}
	c := newIdentityCache(mockAPI)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := c.me()
			assert.NoError(t, err)
			assert.Equal(t, int64(42), u.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, len(mockAPI.GetMeCalls()), "single flight under concurrency")
}
