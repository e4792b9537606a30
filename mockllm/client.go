// Package mockllm is a deterministic stand-in for the OpenAI client, used in
// tests to script provider outcomes without a network.
package mockllm

import (
	"context"

	openaigo "github.com/sashabaranov/go-openai"
)

const defaultContent = `Title: Mock Build Brief

Goals:
- Validate the enhance flow end to end.
- Exercise the proxy without a live provider.

Build prompt: scaffold the app with the platform's standard toolchain.`

type MockLLMClient struct {
	// Content is returned as the single choice. Defaults to a canned brief.
	Content string
	// Err, when set, is returned instead of a response.
	Err error
	// EmptyChoices simulates a success response with no choices.
	EmptyChoices bool

	// Call recording for assertions.
	Calls       int
	LastAPIKey  string
	LastPayload openaigo.ChatCompletionRequest
}

func NewMockLLMClient() *MockLLMClient {
	return &MockLLMClient{Content: defaultContent}
}

func (c *MockLLMClient) GenerateCompletions(_ context.Context, apiKey string, payload openaigo.ChatCompletionRequest) (*openaigo.ChatCompletionResponse, error) {
	c.Calls++
	c.LastAPIKey = apiKey
	c.LastPayload = payload

	if c.Err != nil {
		return nil, c.Err
	}

	if c.EmptyChoices {
		return &openaigo.ChatCompletionResponse{
			ID:      "mock-id",
			Object:  "chat.completion",
			Model:   payload.Model,
			Choices: []openaigo.ChatCompletionChoice{},
		}, nil
	}

	return &openaigo.ChatCompletionResponse{
		ID:     "mock-id",
		Object: "chat.completion",
		Model:  payload.Model,
		Choices: []openaigo.ChatCompletionChoice{
			{
				Index: 0,
				Message: openaigo.ChatCompletionMessage{
					Role:    openaigo.ChatMessageRoleAssistant,
					Content: c.Content,
				},
				FinishReason: openaigo.FinishReasonStop,
			},
		},
		Usage: openaigo.Usage{
			PromptTokens:     12,
			CompletionTokens: 42,
			TotalTokens:      54,
		},
	}, nil
}
