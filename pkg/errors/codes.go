// Package errors provides structured error types for statuspush.
package errors

// ErrorCode identifies a statuspush error kind.
type ErrorCode string

const (
	// ErrUnknownPlatform indicates a platform identifier that is not in the registry.
	ErrUnknownPlatform ErrorCode = "UNKNOWN_PLATFORM"

	// ErrMissingCredential indicates a required environment variable is absent or empty.
	ErrMissingCredential ErrorCode = "MISSING_CREDENTIAL"

	// ErrHTTP indicates the webhook endpoint answered with a non-2xx status.
	ErrHTTP ErrorCode = "HTTP_ERROR"

	// ErrInvalidPayload indicates the outbound payload could not be serialized.
	ErrInvalidPayload ErrorCode = "INVALID_PAYLOAD"
)
