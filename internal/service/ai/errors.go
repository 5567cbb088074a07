package ai

// User-facing gateway failure messages, keyed to the HTTP status the
// invocation surfaces with.
const (
	msgOffTopicSearch  = "I can only search for Kenya Revenue Authority (KRA) related information. Please ask about KRA services, tax matters, or revenue topics."
	msgRateLimited     = "Rate limit exceeded. Please try again in a moment."
	msgPaymentRequired = "Payment required. Please add credits to continue."
	msgGatewayError    = "AI gateway error"
)

// InvocationError is a chat invocation failure with the HTTP status it
// should surface as.
type InvocationError struct {
	Status  int
	Message string
}

func (e *InvocationError) Error() string {
	return e.Message
}
