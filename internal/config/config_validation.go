package config

import "time"

// Defaults applied after all sources are merged. Everything secret has no
// default on purpose.
const (
	DefaultHTTPAddress = "localhost:3000"
	DefaultSessionTTL  = 24 * time.Hour

	// DefaultRedirectURL is the callback URL registered with the provider
	// for the default deployment host/port.
	DefaultRedirectURL = "http://localhost:3000/auth/google/secrets"
)

// applyDefaults fills zero-valued fields that have a sensible default.
// Secrets (client credentials, signing keys) never receive defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = DefaultSessionTTL
	}

	if cfg.OAuth.RedirectURL == "" {
		cfg.OAuth.RedirectURL = DefaultRedirectURL
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.StateSignKey == "" {
		return ErrInvalidSessionConfigs
	}

	// The federated path is optional: with no client credentials the Google
	// routes are still registered but the resolver rejects every exchange.
	return nil
}
