// Package transport performs the outbound webhook HTTP call.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/kart-io/statuspush/pkg/errors"
	"github.com/kart-io/statuspush/pkg/logger"
)

// Dispatcher posts JSON payloads to webhook URLs and classifies responses by
// status code. It performs exactly one request per Send: no retries, no
// explicit timeout (the transport default applies) and no response size
// limit. A hang in the underlying transport blocks that call until the
// caller's context is done; that is a documented limitation, not a bug.
type Dispatcher struct {
	client *http.Client
	logger logger.Logger
}

// NewDispatcher creates a dispatcher. A nil client gets a fresh http.Client
// with transport defaults; a nil logger discards output.
func NewDispatcher(client *http.Client, log logger.Logger) *Dispatcher {
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = logger.Discard
	}
	return &Dispatcher{client: client, logger: log}
}

// Send serializes payload to JSON and posts it to url with
// Content-Type: application/json and an exact Content-Length.
//
// A 2xx response resolves to the parsed JSON body; when the body is not
// valid JSON the call still succeeds and resolves to a wrapper carrying the
// raw text under "raw". Any 2xx is success regardless of body shape.
//
// A non-2xx response fails with HTTP_ERROR whose message contains the
// numeric status and the raw body text, raw even when it would parse.
// Transport-level errors (DNS, refused connection) propagate unchanged.
func (d *Dispatcher) Send(ctx context.Context, url string, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Newf(errors.ErrInvalidPayload, "marshal payload: %v", err).WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	d.logger.Debug("dispatching webhook request", "url", url, "bytes", len(body))

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("webhook response received",
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.logger.Error("webhook request failed", "status", resp.StatusCode, "body", string(respBody))
		return nil, errors.NewHTTPError(resp.StatusCode, string(respBody))
	}

	var parsed map[string]any
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		// Permissive on success: a 2xx with an unparseable body resolves to
		// the raw text instead of failing the call.
		return map[string]any{"raw": string(respBody)}, nil
	}
	return parsed, nil
}
