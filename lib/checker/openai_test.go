package checker

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-doorman/lib/checker/mocks"
)

func TestOpenAIChecker_Check(t *testing.T) {
	tbl := []struct {
		name    string
		content string
		apiErr  error
		spam    bool
		err     bool
	}{
		{"spam response", `{"spam": true, "confidence": 90}`, nil, true, false},
		{"ham response", `{"spam": false, "confidence": 90}`, nil, false, false},
		{"api error", "", fmt.Errorf("rate limited"), false, true},
		{"garbage response", "not a json", nil, false, true},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			client := &mocks.OpenAIClientMock{
				CreateChatCompletionFunc: func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
					if tt.apiErr != nil {
						return openai.ChatCompletionResponse{}, tt.apiErr
					}
					return chatResp(tt.content), nil
				},
			}
			checker := newOpenAIChecker(client, OpenAIConfig{})
			spam, err := checker.check("some message")
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.spam, spam)
		})
	}
}

func TestOpenAIChecker_CheckNoChoices(t *testing.T) {
	client := &mocks.OpenAIClientMock{
		CreateChatCompletionFunc: func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, nil
		},
	}
	checker := newOpenAIChecker(client, OpenAIConfig{})
	_, err := checker.check("some message")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAIChecker_CheckTruncatesRequest(t *testing.T) {
	var gotLen int
	client := &mocks.OpenAIClientMock{
		CreateChatCompletionFunc: func(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			gotLen = len(req.Messages[1].Content)
			return chatResp(`{"spam": false, "confidence": 10}`), nil
		},
	}
	checker := newOpenAIChecker(client, OpenAIConfig{MaxSymbolsRequest: 100})
	_, err := checker.check(strings.Repeat("x", 500))
	require.NoError(t, err)
	assert.Equal(t, 100, gotLen)
}

func TestOpenAIChecker_Defaults(t *testing.T) {
	c := newOpenAIChecker(&mocks.OpenAIClientMock{}, OpenAIConfig{})
	assert.Equal(t, defaultPrompt, c.params.SystemPrompt)
	assert.Equal(t, 1024, c.params.MaxTokensResponse)
	assert.Equal(t, 8192, c.params.MaxSymbolsRequest)
	assert.Equal(t, "gpt-4o-mini", c.params.Model)
}

func TestOpenAIChecker_NilClient(t *testing.T) {
	c := newOpenAIChecker(nil, OpenAIConfig{})
	_, err := c.check("msg")
	require.Error(t, err)
}
