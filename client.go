package statuspush

import (
	"net/http"

	"github.com/kart-io/statuspush/pkg/config"
	"github.com/kart-io/statuspush/pkg/logger"
	"github.com/kart-io/statuspush/pkg/platform"
	"github.com/kart-io/statuspush/pkg/telemetry"
	"github.com/kart-io/statuspush/pkg/transport"
)

// Client ties the resolver, payload registry and dispatcher together. Clients
// are safe for concurrent use: pushes share no mutable state and each opens
// its own connection, with no cross-call ordering guarantee.
type Client struct {
	logger          logger.Logger
	source          config.Source
	httpClient      *http.Client
	telemetry       *telemetry.Provider
	defaultPlatform platform.Platform

	resolver   *config.Resolver
	dispatcher *transport.Dispatcher
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used by the client and its components.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// WithSource overrides the environment source, mainly for tests.
func WithSource(source config.Source) Option {
	return func(c *Client) {
		c.source = source
	}
}

// WithHTTPClient sets the HTTP client used for webhook requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithDefaultPlatform sets the platform used when a push names none.
func WithDefaultPlatform(p platform.Platform) Option {
	return func(c *Client) {
		c.defaultPlatform = p
	}
}

// WithTelemetry attaches a telemetry provider.
func WithTelemetry(tp *telemetry.Provider) Option {
	return func(c *Client) {
		c.telemetry = tp
	}
}

// New creates a client. With no options it reads the real process
// environment, logs warnings and above to stdout, uses transport-default
// HTTP behavior and no-op telemetry, and defaults to the WeCom platform.
func New(opts ...Option) *Client {
	c := &Client{
		logger:          logger.New(),
		source:          config.EnvSource{},
		defaultPlatform: platform.Default,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.telemetry == nil {
		// NewProvider never fails for a disabled config.
		c.telemetry, _ = telemetry.NewProvider(&telemetry.Config{})
	}

	c.resolver = config.NewResolver(c.source, c.logger)
	c.dispatcher = transport.NewDispatcher(c.httpClient, c.logger)
	return c
}
