package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	openaigo "github.com/sashabaranov/go-openai"
)

const (
	defaultBaseURL       = "https://api.openai.com/v1"
	completionsPath      = "/chat/completions"
	insufficientQuotaErr = "insufficient_quota"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the OpenAI chat completions API. baseURL
// overrides the production endpoint when non-empty; tests point it at a local
// server.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// errorResponse is the provider's error envelope.
type errorResponse struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// GenerateCompletions calls the OpenAI Completions API once. The credential is
// taken per call rather than held on the client. Failures are returned as
// *ProviderError classified by kind.
func (c *Client) GenerateCompletions(ctx context.Context, apiKey string, payload openaigo.ChatCompletionRequest) (*openaigo.ChatCompletionResponse, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, &ProviderError{Kind: ErrorKindTransport, Err: fmt.Errorf("error marshalling payload: %w", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, &ProviderError{Kind: ErrorKindTransport, Err: fmt.Errorf("error creating request: %w", err)}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+apiKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &ProviderError{Kind: ErrorKindTransport, Err: fmt.Errorf("error sending request: %w", err)}
	}
	defer response.Body.Close()

	responseData, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &ProviderError{Kind: ErrorKindTransport, Err: fmt.Errorf("error reading response: %w", err)}
	}

	if response.StatusCode != http.StatusOK {
		return nil, classifyHTTPError(response.StatusCode, responseData)
	}

	var completionsResponse openaigo.ChatCompletionResponse
	if err := json.Unmarshal(responseData, &completionsResponse); err != nil {
		return nil, &ProviderError{Kind: ErrorKindTransport, Err: fmt.Errorf("error unmarshalling response: %w", err)}
	}

	return &completionsResponse, nil
}

func classifyHTTPError(statusCode int, body []byte) *ProviderError {
	var envelope errorResponse
	message := ""
	code := ""
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		message = envelope.Error.Message
		code = envelope.Error.Code
	}

	kind := ErrorKindUpstream
	switch {
	case statusCode == http.StatusUnauthorized:
		kind = ErrorKindUnauthorized
	case statusCode == http.StatusTooManyRequests || code == insufficientQuotaErr:
		kind = ErrorKindRateLimited
	}

	return &ProviderError{Kind: kind, StatusCode: statusCode, Message: message}
}
