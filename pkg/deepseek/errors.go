package deepseek

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call so callers can react without parsing
// provider text.
type Kind string

const (
	// KindConfiguration means the client is missing its API credential.
	KindConfiguration Kind = "configuration"
	// KindAuthentication means the upstream rejected the credential (401).
	KindAuthentication Kind = "authentication"
	// KindRateLimit means the upstream throttled the call (429).
	KindRateLimit Kind = "rate_limit"
	// KindUpstreamHTTP means any other non-2xx status.
	KindUpstreamHTTP Kind = "upstream_http"
	// KindUnreachable means the request was sent but no response arrived.
	KindUnreachable Kind = "unreachable"
	// KindProtocol means a 2xx response with a malformed body.
	KindProtocol Kind = "protocol"
)

// Error is the normalized failure surfaced to callers. Message is
// caller-safe; the raw provider error is carried in cause for logging.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("deepseek: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("deepseek: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the classification from an error chain, or "" if the
// error did not come from this package.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsRetryable reports whether another attempt could plausibly succeed.
// Configuration and protocol failures are deterministic, everything else
// (auth included, matching upstream behavior on token rotation) is
// re-attempted by the caller's retry policy.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindConfiguration, KindProtocol:
		return false
	}
	return true
}
