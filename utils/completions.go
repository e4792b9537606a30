package utils

import (
	openaigo "github.com/sashabaranov/go-openai"
)

func ToChatCompletionRequestFromPrompt(systemPrompt, userPrompt, model string, temperature float32, maxTokens int) openaigo.ChatCompletionRequest {
	return openaigo.ChatCompletionRequest{
		Model: model,
		Messages: []openaigo.ChatCompletionMessage{
			{
				Role:    openaigo.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openaigo.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// ToResponseStringFromChatCompletionResponse extracts the content of the first
// choice. Returns "" when the provider sent no choices or no content.
func ToResponseStringFromChatCompletionResponse(response *openaigo.ChatCompletionResponse) string {
	if response == nil || len(response.Choices) == 0 {
		return ""
	}
	return response.Choices[0].Message.Content
}
