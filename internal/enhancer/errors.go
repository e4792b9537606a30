package enhancer

// Condition is the closed set of failure classes surfaced to callers.
type Condition string

const (
	ConditionInvalidInput   Condition = "invalid_input"
	ConditionConfiguration  Condition = "configuration"
	ConditionAuthentication Condition = "authentication"
	ConditionQuotaExceeded  Condition = "quota_exceeded"
	ConditionUpstreamError  Condition = "upstream_error"
	ConditionUnavailable    Condition = "unavailable"
)

// Fixed user-presentable messages per condition.
const (
	msgEmptyIdea      = "Please describe your product idea before enhancing."
	msgUnknownAppType = "Unknown app type. Choose Web App, React Native, or Native iOS."
	msgNoCredential   = "OPENAI_API_KEY is not configured. Set it in the server environment."
	msgBadCredential  = "The OpenAI API key was rejected. Verify the configured credential."
	msgQuotaExceeded  = "OpenAI quota exceeded. Check your plan and billing details, or try again later."
	msgUpstream       = "The AI provider returned an error."
	msgUnavailable    = "The AI service is currently unreachable. Please try again."
)

// Error carries a condition plus the message shown to the user. Err holds the
// underlying cause for operator diagnostics, never shown to the user.
type Error struct {
	Condition Condition
	Message   string
	Err       error
}

func (e *Error) Error() string {
	return string(e.Condition) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(condition Condition, message string) *Error {
	return &Error{Condition: condition, Message: message}
}

// ConditionOf returns the condition of err, or ConditionUnavailable when err
// is not an *Error.
func ConditionOf(err error) Condition {
	if e, ok := err.(*Error); ok {
		return e.Condition
	}
	return ConditionUnavailable
}
