package transport

import (
	"context"
	goerrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/statuspush/pkg/errors"
	"github.com/kart-io/statuspush/pkg/logger"
)

func TestSendSuccess(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, int64(len(gotBody)), r.ContentLength, "Content-Length must be exact")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errcode":0,"errmsg":"ok"}`))
	}))
	defer server.Close()

	d := NewDispatcher(nil, logger.Discard)
	resp, err := d.Send(context.Background(), server.URL, map[string]string{"msgtype": "markdown"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"msgtype":"markdown"}`, string(gotBody))
	assert.Equal(t, float64(0), resp["errcode"])
	assert.Equal(t, "ok", resp["errmsg"])
}

func TestSendSuccessNonJSONBody(t *testing.T) {
	// Slack answers incoming webhooks with plain "ok"; any 2xx is success
	// regardless of body shape.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	d := NewDispatcher(nil, logger.Discard)
	resp, err := d.Send(context.Background(), server.URL, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"raw": "ok"}, resp)
}

func TestSendNon2xx(t *testing.T) {
	// The raw body must survive in the error message even when it is valid
	// JSON that would have parsed.
	body := `{"ok":false,"description":"chat not found"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	d := NewDispatcher(nil, logger.Discard)
	_, err := d.Send(context.Background(), server.URL, struct{}{})
	require.Error(t, err)

	var pushErr *errors.PushError
	require.ErrorAs(t, err, &pushErr)
	assert.Equal(t, errors.ErrHTTP, pushErr.Code)
	assert.Equal(t, 400, pushErr.StatusCode())
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), body)
}

func TestSendTransportErrorPropagates(t *testing.T) {
	d := NewDispatcher(nil, logger.Discard)
	_, err := d.Send(context.Background(), "http://127.0.0.1:1/closed", struct{}{})
	require.Error(t, err)

	var pushErr *errors.PushError
	assert.False(t, goerrors.As(err, &pushErr), "transport errors pass through unwrapped")
}

func TestSendContextCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	d := NewDispatcher(nil, logger.Discard)
	go func() {
		_, err := d.Send(ctx, server.URL, struct{}{})
		errCh <- err
	}()

	<-started
	cancel()
	err := <-errCh
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendUnserializablePayload(t *testing.T) {
	d := NewDispatcher(nil, logger.Discard)
	_, err := d.Send(context.Background(), "http://example.invalid", map[string]any{"fn": func() {}})
	require.Error(t, err)

	var pushErr *errors.PushError
	require.ErrorAs(t, err, &pushErr)
	assert.Equal(t, errors.ErrInvalidPayload, pushErr.Code)
}
