package openai

import "fmt"

// ErrorKind is the closed set of provider failure classes the rest of the
// service switches over, independent of the provider's wire format.
type ErrorKind int

const (
	// ErrorKindTransport covers failures where no provider-reported error was
	// received: connection errors, unreadable or undecodable responses.
	ErrorKindTransport ErrorKind = iota
	// ErrorKindUnauthorized means the provider rejected the credential.
	ErrorKindUnauthorized
	// ErrorKindRateLimited means the provider reported rate limiting or an
	// exhausted quota.
	ErrorKindRateLimited
	// ErrorKindUpstream is any other provider-reported failure.
	ErrorKindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnauthorized:
		return "unauthorized"
	case ErrorKindRateLimited:
		return "rate_limited"
	case ErrorKindUpstream:
		return "upstream"
	default:
		return "transport"
	}
}

// ProviderError is a classified failure from the completions call.
type ProviderError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("openai: %s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("openai: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("openai: %s", e.Kind)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
