package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			OAuth:   OAuth{ClientID: "id-from-env"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			Session: Session{StateSignKey: "key"},
		},
		&StructuredConfig{OAuth: OAuth{ClientSecret: "secret-from-flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "id-from-env", cfg.OAuth.ClientID)
	assert.Equal(t, "secret-from-flags", cfg.OAuth.ClientSecret)
}

// TestBuild_FirstSourceWins verifies the merge priority: a non-zero field from
// an earlier source is not overridden by a later source.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server:  Server{HTTPAddress: "localhost:3000"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			Session: Session{StateSignKey: "key"},
		},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
}

// TestBuild_AppliesDefaults verifies that build fills the listen address,
// session TTL, and redirect URL when no source provides them.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
		Session: Session{StateSignKey: "key"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, DefaultRedirectURL, cfg.OAuth.RedirectURL)
}

// TestBuild_ValidationFailures verifies that a merged config missing required
// fields is rejected with the matching sentinel error.
func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "missing DSN",
			cfg:     &StructuredConfig{Session: Session{StateSignKey: "key"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing state sign key",
			cfg:     &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}}},
			wantErr: ErrInvalidSessionConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
