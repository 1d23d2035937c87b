// Package statuspush sends formatted status notifications to chat-webhook
// endpoints (WeCom, DingTalk, Feishu, Slack, Telegram). Credentials come from
// environment variables resolved fresh on every call; each push performs
// exactly one outbound HTTP POST with no retries.
package statuspush

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/kart-io/statuspush/pkg/config"
	"github.com/kart-io/statuspush/pkg/errors"
	"github.com/kart-io/statuspush/pkg/platform"
)

// Options are the caller-tunable fields of a push. The zero value picks the
// default platform, a generic title and the platform's default color.
type Options struct {
	// Platform selects the webhook target; empty means the default platform.
	Platform platform.Platform
	// Title feeds platforms with a separate title field or card header.
	Title string
	// Color overrides the Feishu card header color.
	Color string
}

// Push sends content as a formatted notification to one platform and returns
// the parsed webhook response. Resolution, payload construction and dispatch
// failures all surface from this call; nothing is retried or swallowed.
func (c *Client) Push(ctx context.Context, content string, opts *Options) (map[string]any, error) {
	if opts == nil {
		opts = &Options{}
	}
	p := opts.Platform
	if p == "" {
		p = c.defaultPlatform
	}

	ctx, span := c.telemetry.TracePush(ctx, string(p))
	defer span.End()
	start := time.Now()

	result, err := c.push(ctx, p, content, opts)
	if err != nil {
		c.telemetry.SetSpanError(span, err)
		c.telemetry.RecordPushFailed(ctx, string(p), time.Since(start), errorType(err))
		return nil, err
	}

	c.telemetry.SetSpanSuccess(span)
	c.telemetry.RecordPushSent(ctx, string(p), time.Since(start))
	return result, nil
}

func (c *Client) push(ctx context.Context, p platform.Platform, content string, opts *Options) (map[string]any, error) {
	creds, err := c.resolver.Resolve(p)
	if err != nil {
		return nil, err
	}

	url := p.WebhookURL(creds.Primary, creds.Extra)
	payload, err := platform.BuildPayload(p, content, platform.PayloadOptions{
		Title: opts.Title,
		Color: opts.Color,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("pushing notification", "platform", p, "bytes", len(content))
	return c.dispatcher.Send(ctx, url, payload)
}

// PushProgress sends a progress/status notification for a task. The message
// is rendered with the platform's progress template and the status kind's
// style; an unknown kind keeps its literal text but styles as in_progress.
// The options title is overwritten with "<task> - <status>" unconditionally.
func (c *Client) PushProgress(ctx context.Context, task string, status platform.StatusKind, details string, opts *Options) (map[string]any, error) {
	if opts == nil {
		opts = &Options{}
	}
	p := opts.Platform
	if p == "" {
		p = c.defaultPlatform
	}

	style := platform.StyleFor(status)
	content := platform.FormatProgress(p, task, status, details, style)

	opts.Title = fmt.Sprintf("%s - %s", task, status)
	if opts.Color == "" {
		opts.Color = style.Color
	}
	opts.Platform = p
	return c.Push(ctx, content, opts)
}

// Resolve resolves the credentials for a platform without sending anything.
// Exposed for callers that want to fail fast before doing work.
func (c *Client) Resolve(p platform.Platform) (*config.Credentials, error) {
	return c.resolver.Resolve(p)
}

// IsConfigured reports whether a platform is currently deliverable.
func (c *Client) IsConfigured(p platform.Platform) bool {
	return c.resolver.IsConfigured(p)
}

// ConfiguredPlatforms lists the platforms that are currently deliverable, in
// registry enumeration order.
func (c *Client) ConfiguredPlatforms() []platform.Platform {
	return c.resolver.ConfiguredPlatforms()
}

// Push sends a notification using a default client.
func Push(ctx context.Context, content string, opts *Options) (map[string]any, error) {
	return New().Push(ctx, content, opts)
}

// PushProgress sends a progress notification using a default client.
func PushProgress(ctx context.Context, task string, status platform.StatusKind, details string, opts *Options) (map[string]any, error) {
	return New().PushProgress(ctx, task, status, details, opts)
}

// errorType labels an error for metrics attributes: the stable error code
// for push errors, "transport" for everything else.
func errorType(err error) string {
	var pushErr *errors.PushError
	if stderrors.As(err, &pushErr) {
		return string(pushErr.Code)
	}
	return "transport"
}
