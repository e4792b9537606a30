package enhancer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prompthub/prompthub/internal/config"
	"github.com/prompthub/prompthub/mockllm"
	"github.com/prompthub/prompthub/models"
	"github.com/prompthub/prompthub/openai"
)

var testOpenAIConfig = config.OpenAIConfig{
	Model:       "gpt-4o-mini",
	Temperature: 0.4,
	MaxTokens:   1024,
}

func newTestService(client CompletionsClient, key string) *Service {
	return NewService(client, testOpenAIConfig, func() string { return key })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		request  models.EnhanceRequest
		wantIdea string
		wantErr  bool
	}{
		{
			name:     "valid request",
			request:  models.EnhanceRequest{Idea: "a recipe sharing app", AppType: models.AppTypeWebApp},
			wantIdea: "a recipe sharing app",
		},
		{
			name:     "idea is trimmed",
			request:  models.EnhanceRequest{Idea: "  fitness tracker  ", AppType: models.AppTypeNativeIOS},
			wantIdea: "fitness tracker",
		},
		{
			name:    "empty idea",
			request: models.EnhanceRequest{Idea: "", AppType: models.AppTypeWebApp},
			wantErr: true,
		},
		{
			name:    "whitespace only idea",
			request: models.EnhanceRequest{Idea: "   \n\t ", AppType: models.AppTypeWebApp},
			wantErr: true,
		},
		{
			name:    "unknown app type",
			request: models.EnhanceRequest{Idea: "a recipe sharing app", AppType: "android"},
			wantErr: true,
		},
		{
			name:    "missing app type",
			request: models.EnhanceRequest{Idea: "a recipe sharing app"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := Validate(tt.request)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate() expected error, got %+v", validated)
				}
				if got := ConditionOf(err); got != ConditionInvalidInput {
					t.Errorf("ConditionOf() = %s, want %s", got, ConditionInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if validated.Idea != tt.wantIdea {
				t.Errorf("Validate() idea = %q, want %q", validated.Idea, tt.wantIdea)
			}
		})
	}
}

func TestEnhanceInvalidInputMakesNoProviderCall(t *testing.T) {
	tests := []struct {
		name    string
		request models.EnhanceRequest
	}{
		{"empty idea", models.EnhanceRequest{Idea: "", AppType: models.AppTypeWebApp}},
		{"whitespace idea", models.EnhanceRequest{Idea: "  ", AppType: models.AppTypeReactNative}},
		{"unknown app type", models.EnhanceRequest{Idea: "a todo app", AppType: "flutter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mockllm.NewMockLLMClient()
			service := newTestService(client, "sk-test")

			_, err := service.Enhance(context.Background(), tt.request)
			if ConditionOf(err) != ConditionInvalidInput {
				t.Fatalf("Enhance() condition = %s, want %s", ConditionOf(err), ConditionInvalidInput)
			}
			if client.Calls != 0 {
				t.Errorf("provider called %d times, want 0", client.Calls)
			}
		})
	}
}

func TestEnhanceMissingCredential(t *testing.T) {
	client := mockllm.NewMockLLMClient()
	service := newTestService(client, "")

	_, err := service.Enhance(context.Background(), models.EnhanceRequest{
		Idea:    "a habit tracker",
		AppType: models.AppTypeWebApp,
	})
	if ConditionOf(err) != ConditionConfiguration {
		t.Fatalf("Enhance() condition = %s, want %s", ConditionOf(err), ConditionConfiguration)
	}
	if client.Calls != 0 {
		t.Errorf("provider called %d times, want 0", client.Calls)
	}
}

func TestEnhanceSuccess(t *testing.T) {
	client := mockllm.NewMockLLMClient()
	client.Content = "  Title: Foo\nGoals:\n- one\n- two  "
	service := newTestService(client, "sk-test")

	response, err := service.Enhance(context.Background(), models.EnhanceRequest{
		Idea:    "a recipe sharing app",
		AppType: models.AppTypeReactNative,
	})
	if err != nil {
		t.Fatalf("Enhance() unexpected error: %v", err)
	}
	if response.EnhancedPrompt != "Title: Foo\nGoals:\n- one\n- two" {
		t.Errorf("EnhancedPrompt = %q, want trimmed content", response.EnhancedPrompt)
	}
	if client.Calls != 1 {
		t.Fatalf("provider called %d times, want 1", client.Calls)
	}
	if client.LastAPIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", client.LastAPIKey)
	}

	payload := client.LastPayload
	if payload.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", payload.Model)
	}
	if payload.Temperature != 0.4 {
		t.Errorf("temperature = %v, want 0.4", payload.Temperature)
	}
	if len(payload.Messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(payload.Messages))
	}
	if payload.Messages[0].Role != "system" || payload.Messages[1].Role != "user" {
		t.Errorf("unexpected roles %q/%q", payload.Messages[0].Role, payload.Messages[1].Role)
	}
	userPrompt := payload.Messages[1].Content
	if !strings.Contains(userPrompt, "a recipe sharing app") {
		t.Errorf("user prompt does not embed the idea: %q", userPrompt)
	}
	if !strings.Contains(userPrompt, "React Native") {
		t.Errorf("user prompt does not embed the platform label: %q", userPrompt)
	}
}

func TestEnhanceEmptyContentFallback(t *testing.T) {
	tests := []struct {
		name   string
		client *mockllm.MockLLMClient
	}{
		{"no choices", &mockllm.MockLLMClient{EmptyChoices: true}},
		{"blank content", &mockllm.MockLLMClient{Content: "   \n "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(tt.client, "sk-test")

			response, err := service.Enhance(context.Background(), models.EnhanceRequest{
				Idea:    "a budgeting app",
				AppType: models.AppTypeWebApp,
			})
			if err != nil {
				t.Fatalf("Enhance() unexpected error: %v", err)
			}
			if response.EnhancedPrompt != fallbackPrompt {
				t.Errorf("EnhancedPrompt = %q, want fallback", response.EnhancedPrompt)
			}
		})
	}
}

func TestEnhanceProviderErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCondition Condition
		wantMessage   string
	}{
		{
			name:          "unauthorized",
			err:           &openai.ProviderError{Kind: openai.ErrorKindUnauthorized, StatusCode: 401},
			wantCondition: ConditionAuthentication,
			wantMessage:   msgBadCredential,
		},
		{
			name:          "rate limited",
			err:           &openai.ProviderError{Kind: openai.ErrorKindRateLimited, StatusCode: 429},
			wantCondition: ConditionQuotaExceeded,
			wantMessage:   msgQuotaExceeded,
		},
		{
			name:          "upstream with message",
			err:           &openai.ProviderError{Kind: openai.ErrorKindUpstream, StatusCode: 500, Message: "model overloaded"},
			wantCondition: ConditionUpstreamError,
			wantMessage:   "model overloaded",
		},
		{
			name:          "upstream without message",
			err:           &openai.ProviderError{Kind: openai.ErrorKindUpstream, StatusCode: 500},
			wantCondition: ConditionUpstreamError,
			wantMessage:   msgUpstream,
		},
		{
			name:          "transport",
			err:           &openai.ProviderError{Kind: openai.ErrorKindTransport},
			wantCondition: ConditionUnavailable,
			wantMessage:   msgUnavailable,
		},
		{
			name:          "unclassified error",
			err:           errors.New("connection reset"),
			wantCondition: ConditionUnavailable,
			wantMessage:   msgUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mockllm.NewMockLLMClient()
			client.Err = tt.err
			service := newTestService(client, "sk-test")

			_, err := service.Enhance(context.Background(), models.EnhanceRequest{
				Idea:    "a note taking app",
				AppType: models.AppTypeNativeIOS,
			})
			var enhanceErr *Error
			if !errors.As(err, &enhanceErr) {
				t.Fatalf("Enhance() error = %v, want *Error", err)
			}
			if enhanceErr.Condition != tt.wantCondition {
				t.Errorf("condition = %s, want %s", enhanceErr.Condition, tt.wantCondition)
			}
			if enhanceErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", enhanceErr.Message, tt.wantMessage)
			}
			if client.Calls != 1 {
				t.Errorf("provider called %d times, want 1", client.Calls)
			}
		})
	}
}
