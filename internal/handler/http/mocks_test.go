package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secretwall/secretwall/internal/config"
	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/service"
	"github.com/secretwall/secretwall/internal/view"
	"github.com/secretwall/secretwall/models"
)

// Hand-rolled service doubles. Each method delegates to the matching
// function field, so tests override only what they exercise.

type mockAuthService struct {
	RegisterUserFunc func(ctx context.Context, username, password string) (models.User, error)
	LoginFunc        func(ctx context.Context, username, password string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	return m.RegisterUserFunc(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.LoginFunc(ctx, username, password)
}

type mockFederatedService struct {
	AuthCodeURLFunc      func(ctx context.Context) (string, error)
	CompleteExchangeFunc func(ctx context.Context, state, code string) (models.ExternalProfile, error)
	FindOrCreateFunc     func(ctx context.Context, externalID string) (models.User, error)
}

func (m *mockFederatedService) AuthCodeURL(ctx context.Context) (string, error) {
	return m.AuthCodeURLFunc(ctx)
}

func (m *mockFederatedService) CompleteExchange(ctx context.Context, state, code string) (models.ExternalProfile, error) {
	return m.CompleteExchangeFunc(ctx, state, code)
}

func (m *mockFederatedService) FindOrCreate(ctx context.Context, externalID string) (models.User, error) {
	return m.FindOrCreateFunc(ctx, externalID)
}

type mockSessionService struct {
	EstablishFunc func(ctx context.Context, user models.User) (models.Session, error)
	ResolveFunc   func(ctx context.Context, token string) (models.User, error)
	TerminateFunc func(ctx context.Context, token string) error
}

func (m *mockSessionService) Establish(ctx context.Context, user models.User) (models.Session, error) {
	return m.EstablishFunc(ctx, user)
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (models.User, error) {
	return m.ResolveFunc(ctx, token)
}

func (m *mockSessionService) Terminate(ctx context.Context, token string) error {
	return m.TerminateFunc(ctx, token)
}

type mockSecretService struct {
	SubmitSecretFunc func(ctx context.Context, userID int64, text string) error
	ListSecretsFunc  func(ctx context.Context) ([]models.SecretEntry, error)
}

func (m *mockSecretService) SubmitSecret(ctx context.Context, userID int64, text string) error {
	return m.SubmitSecretFunc(ctx, userID, text)
}

func (m *mockSecretService) ListSecrets(ctx context.Context) ([]models.SecretEntry, error) {
	return m.ListSecretsFunc(ctx)
}

// newTestHandler wires a Handler with a real renderer and the given service
// doubles.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	return NewHandler(services, renderer, config.Session{}, logger.Nop())
}

// establishedSession is a canned session double: Resolve yields user for
// token, Establish hands out token for any user.
func establishedSession(token string, user models.User) *mockSessionService {
	return &mockSessionService{
		EstablishFunc: func(_ context.Context, u models.User) (models.Session, error) {
			return models.Session{Token: token, UserID: u.UserID}, nil
		},
		ResolveFunc: func(_ context.Context, got string) (models.User, error) {
			if got != token {
				return models.User{}, service.ErrAnonymous
			}
			return user, nil
		},
		TerminateFunc: func(_ context.Context, _ string) error { return nil },
	}
}

// postForm performs a form-encoded POST against the router.
func postForm(t *testing.T, router http.Handler, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// get performs a GET against the router.
func get(t *testing.T, router http.Handler, target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// sessionCookie extracts the session cookie set on a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}
