package checker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

//go:generate moq --out mocks/openai_client.go --pkg mocks --skip-ensure . openAIClient:OpenAIClientMock

// openAIChecker is a wrapper for OpenAI API to double-check if a text is spam
type openAIChecker struct {
	client openAIClient
	params OpenAIConfig
}

// OpenAIConfig contains parameters for openAIChecker
type OpenAIConfig struct {
	MaxTokensResponse int // hard limit for the number of tokens in the response
	MaxSymbolsRequest int // max request length in symbols, longer requests truncated
	Model             string
	SystemPrompt      string
}

type openAIClient interface {
	CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

const defaultPrompt = `I'll give you a text from the messaging application and you will return me a json with two fields: {"spam": true/false, "confidence":1-100}. Set spam:true only if confidence above 80`

type openAIResponse struct {
	IsSpam     bool `json:"spam"`
	Confidence int  `json:"confidence"`
}

func newOpenAIChecker(client openAIClient, params OpenAIConfig) *openAIChecker {
	if params.SystemPrompt == "" {
		params.SystemPrompt = defaultPrompt
	}
	if params.MaxTokensResponse == 0 {
		params.MaxTokensResponse = 1024
	}
	if params.MaxSymbolsRequest == 0 {
		params.MaxSymbolsRequest = 8192
	}
	if params.Model == "" {
		params.Model = "gpt-4o-mini"
	}
	return &openAIChecker{client: client, params: params}
}

// check asks the model if the text is spam. Request is truncated to
// MaxSymbolsRequest to stay inside the model's context window.
func (o *openAIChecker) check(msg string) (spam bool, err error) {
	if o.client == nil {
		return false, fmt.Errorf("openai client is not set")
	}

	if len(msg) > o.params.MaxSymbolsRequest {
		msg = msg[:o.params.MaxSymbolsRequest]
	}

	data := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: o.params.SystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: msg},
	}

	resp, err := o.client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{Model: o.params.Model, MaxTokens: o.params.MaxTokensResponse, Messages: data},
	)
	if err != nil {
		return false, fmt.Errorf("failed to create chat completion: %w", err)
	}

	// the api can return multiple choices, only the first one is used
	if len(resp.Choices) == 0 {
		return false, fmt.Errorf("no choices in response")
	}

	var parsed openAIResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return false, fmt.Errorf("can't unmarshal response: %w", err)
	}

	return parsed.IsSpam, nil
}
