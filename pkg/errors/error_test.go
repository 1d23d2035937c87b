package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestPushError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PushError
		expected string
	}{
		{
			name: "basic error",
			err: &PushError{
				Code:    ErrUnknownPlatform,
				Message: "unknown platform",
			},
			expected: "UNKNOWN_PLATFORM: unknown platform",
		},
		{
			name: "error with platform",
			err: &PushError{
				Code:     ErrMissingCredential,
				Message:  "variable not set",
				Platform: "wecom",
			},
			expected: "MISSING_CREDENTIAL: variable not set (platform: wecom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("PushError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPushError_Is(t *testing.T) {
	err := NewMissingCredential("wecom", "WEBHOOK_WECOM_KEY")
	if !errors.Is(err, &PushError{Code: ErrMissingCredential}) {
		t.Errorf("errors.Is should match on code")
	}
	if errors.Is(err, &PushError{Code: ErrHTTP}) {
		t.Errorf("errors.Is should not match a different code")
	}
}

func TestPushError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := New(ErrHTTP, "request failed").WithCause(cause)
	if !errors.Is(err, cause) {
		t.Errorf("wrapped cause should be reachable via errors.Is")
	}
}

func TestNewUnknownPlatform(t *testing.T) {
	err := NewUnknownPlatform("mattermost", []string{"wecom", "dingtalk", "feishu", "slack", "telegram"})
	msg := err.Error()
	for _, want := range []string{"mattermost", "wecom", "dingtalk", "feishu", "slack", "telegram"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}
}

func TestNewMissingCredential(t *testing.T) {
	err := NewMissingCredential("telegram", "WEBHOOK_TELEGRAM_CHAT_ID")
	msg := err.Error()
	if !strings.Contains(msg, "WEBHOOK_TELEGRAM_CHAT_ID") {
		t.Errorf("message %q should name the exact variable", msg)
	}
	if !strings.Contains(msg, "export ") {
		t.Errorf("message %q should hint how to set the variable", msg)
	}
}

func TestNewHTTPError(t *testing.T) {
	// The raw body stays in the message even when it is valid JSON.
	err := NewHTTPError(400, `{"errcode":93000,"errmsg":"invalid webhook url"}`)
	msg := err.Error()
	if !strings.Contains(msg, "400") {
		t.Errorf("message %q should contain the numeric status", msg)
	}
	if !strings.Contains(msg, `"errmsg":"invalid webhook url"`) {
		t.Errorf("message %q should contain the raw body", msg)
	}
	if err.StatusCode() != 400 {
		t.Errorf("StatusCode() = %d, want 400", err.StatusCode())
	}
}
