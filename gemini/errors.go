package gemini

import "fmt"

// TransportError means the exchange could not be sent or no reply arrived,
// including a context deadline expiring mid-call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("gemini: transport: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError means a reply arrived but could not be parsed into
// the expected envelope (no candidate, or a candidate without text).
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("gemini: malformed response: %s", e.Reason)
}

// ConfigurationError means the client cannot be built from the supplied
// startup configuration. Raised before any exchange is attempted.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("gemini: configuration: %s", e.Reason)
}
