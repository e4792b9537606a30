// Package enhancer turns a validated product idea into an AI-generated build
// brief by proxying a single chat-completion call to the provider.
package enhancer

import (
	"context"
	"errors"
	"strings"

	openaigo "github.com/sashabaranov/go-openai"

	"github.com/prompthub/prompthub/internal/config"
	"github.com/prompthub/prompthub/models"
	"github.com/prompthub/prompthub/openai"
	"github.com/prompthub/prompthub/utils"
)

// Returned when the provider answers successfully but with no content.
const fallbackPrompt = "No enhanced prompt was generated. Please try again."

// CompletionsClient is the slice of the provider client the enhancer needs.
type CompletionsClient interface {
	GenerateCompletions(ctx context.Context, apiKey string, payload openaigo.ChatCompletionRequest) (*openaigo.ChatCompletionResponse, error)
}

// ValidatedRequest is an EnhanceRequest that passed validation: the idea is
// trimmed and non-empty, the app type is a recognized platform identifier.
type ValidatedRequest struct {
	Idea    string
	AppType models.AppType
}

// Validate trims and checks an inbound request. No network or credential
// access happens here.
func Validate(req models.EnhanceRequest) (ValidatedRequest, error) {
	idea := strings.TrimSpace(req.Idea)
	if idea == "" {
		return ValidatedRequest{}, newError(ConditionInvalidInput, msgEmptyIdea)
	}
	if !req.AppType.Valid() {
		return ValidatedRequest{}, newError(ConditionInvalidInput, msgUnknownAppType)
	}
	return ValidatedRequest{Idea: idea, AppType: req.AppType}, nil
}

type Service struct {
	client       CompletionsClient
	openaiConfig config.OpenAIConfig
	apiKey       func() string
}

// NewService wires the enhancer. apiKey is consulted on every call so the
// credential is never cached; pass config.OpenAIKey in production.
func NewService(client CompletionsClient, openaiConfig config.OpenAIConfig, apiKey func() string) *Service {
	return &Service{
		client:       client,
		openaiConfig: openaiConfig,
		apiKey:       apiKey,
	}
}

// Enhance validates the request, checks the credential, and issues exactly one
// provider call. All failures come back as *Error with a fixed user-facing
// message.
func (s *Service) Enhance(ctx context.Context, req models.EnhanceRequest) (*models.EnhanceResponse, error) {
	validated, err := Validate(req)
	if err != nil {
		return nil, err
	}

	key := s.apiKey()
	if key == "" {
		return nil, newError(ConditionConfiguration, msgNoCredential)
	}

	payload := utils.ToChatCompletionRequestFromPrompt(
		systemPrompt,
		buildUserPrompt(validated),
		s.openaiConfig.Model,
		s.openaiConfig.Temperature,
		s.openaiConfig.MaxTokens,
	)

	response, err := s.client.GenerateCompletions(ctx, key, payload)
	if err != nil {
		return nil, mapProviderError(err)
	}

	content := strings.TrimSpace(utils.ToResponseStringFromChatCompletionResponse(response))
	if content == "" {
		content = fallbackPrompt
	}

	return &models.EnhanceResponse{EnhancedPrompt: content}, nil
}

func mapProviderError(err error) *Error {
	var providerErr *openai.ProviderError
	if !errors.As(err, &providerErr) {
		return &Error{Condition: ConditionUnavailable, Message: msgUnavailable, Err: err}
	}

	switch providerErr.Kind {
	case openai.ErrorKindUnauthorized:
		return &Error{Condition: ConditionAuthentication, Message: msgBadCredential, Err: err}
	case openai.ErrorKindRateLimited:
		return &Error{Condition: ConditionQuotaExceeded, Message: msgQuotaExceeded, Err: err}
	case openai.ErrorKindUpstream:
		message := msgUpstream
		if providerErr.Message != "" {
			message = providerErr.Message
		}
		return &Error{Condition: ConditionUpstreamError, Message: message, Err: err}
	default:
		return &Error{Condition: ConditionUnavailable, Message: msgUnavailable, Err: err}
	}
}
