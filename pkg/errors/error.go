package errors

import (
	"fmt"
)

// PushError represents a statuspush error with structured information.
// The Code is stable API; Message is informative but free-form.
type PushError struct {
	Code     ErrorCode      `json:"code"`
	Message  string         `json:"message"`
	Platform string         `json:"platform,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	// Cause is the original error, not serialized.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *PushError) Error() string {
	if e.Platform != "" {
		return fmt.Sprintf("%s: %s (platform: %s)", e.Code, e.Message, e.Platform)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *PushError) Unwrap() error {
	return e.Cause
}

// Is matches errors by code so callers can use errors.Is with sentinel values.
func (e *PushError) Is(target error) bool {
	if targetErr, ok := target.(*PushError); ok {
		return e.Code == targetErr.Code
	}
	return false
}

// WithCause attaches a cause error.
func (e *PushError) WithCause(cause error) *PushError {
	e.Cause = cause
	return e
}

// WithPlatform sets the platform the error originated from.
func (e *PushError) WithPlatform(platform string) *PushError {
	e.Platform = platform
	return e
}

// WithMetadata attaches a metadata entry.
func (e *PushError) WithMetadata(key string, value any) *PushError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	e.Metadata[key] = value
	return e
}

// New creates a new PushError with the given code and message.
func New(code ErrorCode, message string) *PushError {
	return &PushError{Code: code, Message: message}
}

// Newf creates a new PushError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *PushError {
	return &PushError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewUnknownPlatform creates an UNKNOWN_PLATFORM error whose message
// enumerates the valid identifiers.
func NewUnknownPlatform(id string, valid []string) *PushError {
	return Newf(ErrUnknownPlatform, "unknown platform %q, valid platforms: %v", id, valid)
}

// NewMissingCredential creates a MISSING_CREDENTIAL error naming the exact
// environment variable and how to set it.
func NewMissingCredential(platform, envVar string) *PushError {
	return Newf(ErrMissingCredential,
		"environment variable %s is not set, run `export %s=<value>` or add it to your .env file",
		envVar, envVar).WithPlatform(platform).WithMetadata("env_var", envVar)
}

// NewHTTPError creates an HTTP_ERROR carrying the numeric status and the raw
// response body. The raw body is kept in the message even when it is valid
// JSON so diagnostics survive any later parsing decisions.
func NewHTTPError(status int, body string) *PushError {
	return Newf(ErrHTTP, "webhook request failed with status %d: %s", status, body).
		WithMetadata("status_code", status).
		WithMetadata("body", body)
}

// StatusCode returns the HTTP status carried by an HTTP_ERROR, or 0.
func (e *PushError) StatusCode() int {
	if code, ok := e.Metadata["status_code"].(int); ok {
		return code
	}
	return 0
}
