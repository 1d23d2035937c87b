package config

import (
	"strings"

	"github.com/kart-io/statuspush/pkg/errors"
	"github.com/kart-io/statuspush/pkg/logger"
	"github.com/kart-io/statuspush/pkg/platform"
)

// Credentials is the configuration resolved for one platform. It lives for a
// single push invocation and is never cached.
type Credentials struct {
	// Primary is the key, token, or full URL authorizing delivery.
	Primary string
	// Extra is the secondary credential for platforms that need one
	// (Telegram's chat id); "" otherwise.
	Extra string
}

// Resolver resolves platform credentials from a Source.
type Resolver struct {
	source Source
	logger logger.Logger
}

// NewResolver creates a resolver over the given source. A nil source falls
// back to the real process environment; a nil logger discards output.
func NewResolver(source Source, log logger.Logger) *Resolver {
	if source == nil {
		source = EnvSource{}
	}
	if log == nil {
		log = logger.Discard
	}
	return &Resolver{source: source, logger: log}
}

// Resolve reads the credentials for the given platform, failing with
// UNKNOWN_PLATFORM for identifiers outside the registry and with
// MISSING_CREDENTIAL naming the exact variable that is unset or empty.
// The extra variable, when the platform declares one, is validated
// separately so the failure names the right variable.
func (r *Resolver) Resolve(p platform.Platform) (*Credentials, error) {
	if !platform.Valid(p) {
		return nil, errors.NewUnknownPlatform(string(p), platform.Names())
	}

	primaryVar := p.CredentialVar()
	primary := strings.TrimSpace(r.source.Getenv(primaryVar))
	if primary == "" {
		r.logger.Debug("credential variable not set", "platform", p, "var", primaryVar)
		return nil, errors.NewMissingCredential(string(p), primaryVar)
	}

	creds := &Credentials{Primary: primary}
	if extraVar := p.ExtraVar(); extraVar != "" {
		extra := strings.TrimSpace(r.source.Getenv(extraVar))
		if extra == "" {
			r.logger.Debug("extra credential variable not set", "platform", p, "var", extraVar)
			return nil, errors.NewMissingCredential(string(p), extraVar)
		}
		creds.Extra = extra
	}

	return creds, nil
}

// IsConfigured reports whether the platform can be resolved right now. It is
// the single place that collapses resolution failures into a boolean.
func (r *Resolver) IsConfigured(p platform.Platform) bool {
	_, err := r.Resolve(p)
	return err == nil
}

// ConfiguredPlatforms filters the registry enumeration through IsConfigured,
// preserving enumeration order.
func (r *Resolver) ConfiguredPlatforms() []platform.Platform {
	var configured []platform.Platform
	for _, p := range platform.All() {
		if r.IsConfigured(p) {
			configured = append(configured, p)
		}
	}
	return configured
}
