package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/secretwall/secretwall/internal/config"
	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/store"
	"github.com/secretwall/secretwall/internal/utils"
	"github.com/secretwall/secretwall/models"
)

const (
	// userInfoURL is Google's profile endpoint; the "id" field of its
	// response is the stable external identifier.
	userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	// stateTTL bounds how long a consent round-trip may take before the
	// callback's state parameter is rejected.
	stateTTL = 10 * time.Minute
)

// codeExchanger abstracts the oauth2 code-for-token exchange so that tests
// can stub the provider without a network round-trip.
type codeExchanger interface {
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

// federatedService is the concrete implementation of FederatedService for
// Google. It composes the oauth2 authorization-code flow, a resty client for
// the userinfo fetch, and the UserRepository's atomic find-or-create.
type federatedService struct {
	userRepository store.UserRepository

	oauth     *oauth2.Config
	exchanger codeExchanger
	http      *resty.Client

	// userInfoURL is overridable so tests can point the profile fetch at a
	// local server.
	userInfoURL string

	// stateSignKey signs the OAuth2 state parameter.
	stateSignKey string

	logger *logger.Logger
}

// NewFederatedService constructs a FederatedService for the Google provider
// using the client credentials and callback URL from cfg.
func NewFederatedService(userRepository store.UserRepository, oauthCfg config.OAuth, sessionCfg config.Session, logger *logger.Logger) FederatedService {
	oauth := &oauth2.Config{
		ClientID:     oauthCfg.ClientID,
		ClientSecret: oauthCfg.ClientSecret,
		RedirectURL:  oauthCfg.RedirectURL,
		Scopes:       []string{"profile"},
		Endpoint:     google.Endpoint,
	}

	return &federatedService{
		userRepository: userRepository,
		oauth:          oauth,
		exchanger:      oauth,
		http:           resty.New(),
		userInfoURL:    userInfoURL,
		stateSignKey:   sessionCfg.StateSignKey,
		logger:         logger,
	}
}

// AuthCodeURL returns the provider consent URL. The state parameter is a
// signed, short-lived token so the callback can prove the flow started here.
func (f *federatedService) AuthCodeURL(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	state, err := utils.GenerateStateToken(stateTTL, f.stateSignKey)
	if err != nil {
		log.Err(err).Msg("generating oauth state token failed")
		return "", fmt.Errorf("generating oauth state token failed: %w", err)
	}

	return f.oauth.AuthCodeURL(state), nil
}

// CompleteExchange turns a callback's state and code into an external
// profile.
//
// Returns:
//   - ErrProviderDenied if the state parameter is missing, expired, or not
//     signed by this server (the consent flow did not legitimately complete).
//   - ErrProvider if the token exchange or the profile fetch fails, or the
//     provider returns a profile without a stable ID.
func (f *federatedService) CompleteExchange(ctx context.Context, state, code string) (models.ExternalProfile, error) {
	log := logger.FromContext(ctx)

	if err := utils.ValidateStateToken(state, f.stateSignKey); err != nil {
		log.Err(err).Msg("oauth state validation failed")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrProviderDenied, err)
	}

	token, err := f.exchanger.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Msg("oauth code exchange failed")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	var profile models.ExternalProfile
	resp, err := f.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&profile).
		Get(f.userInfoURL)
	if err != nil {
		log.Err(err).Msg("fetching external profile failed")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("external profile endpoint returned error")
		return models.ExternalProfile{}, fmt.Errorf("%w: userinfo status %d", ErrProvider, resp.StatusCode())
	}
	if profile.ID == "" {
		log.Error().Msg("external profile has no stable id")
		return models.ExternalProfile{}, fmt.Errorf("%w: empty external id", ErrProvider)
	}

	return profile, nil
}

// FindOrCreate resolves the external identity to a local user record via the
// repository's atomic upsert. At most one user ever exists per external ID,
// including under concurrent first logins.
func (f *federatedService) FindOrCreate(ctx context.Context, externalID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if externalID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := f.userRepository.UpsertUserByGoogleID(ctx, externalID)
	if err != nil {
		log.Err(err).Msg("find-or-create by external id failed")
		return models.User{}, fmt.Errorf("find-or-create by external id failed: %w", err)
	}

	return user, nil
}
