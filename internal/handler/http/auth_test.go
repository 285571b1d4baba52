package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretwall/secretwall/internal/service"
	"github.com/secretwall/secretwall/internal/store"
	"github.com/secretwall/secretwall/models"
)

func TestHandler_Register(t *testing.T) {
	form := url.Values{"username": {"alice"}, "password": {"s3cret"}}

	t.Run("successful registration logs the user in and redirects", func(t *testing.T) {
		auth := &mockAuthService{
			RegisterUserFunc: func(_ context.Context, username, password string) (models.User, error) {
				assert.Equal(t, "alice", username)
				assert.Equal(t, "s3cret", password)
				return models.User{UserID: 1}, nil
			},
		}
		h := newTestHandler(t, &service.Services{
			AuthService:    auth,
			SessionService: establishedSession("tok-1", models.User{UserID: 1}),
		})
		router := h.Init()

		rec := postForm(t, router, "/register", form, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		// the relative "secrets" target resolves against /register
		assert.Equal(t, "/secrets", rec.Header().Get("Location"))

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "tok-1", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("duplicate username goes back to the form without a session", func(t *testing.T) {
		auth := &mockAuthService{
			RegisterUserFunc: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{}, store.ErrUsernameTaken
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: auth})
		router := h.Init()

		rec := postForm(t, router, "/register", form, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/register", rec.Header().Get("Location"))
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("empty fields go back to the form", func(t *testing.T) {
		auth := &mockAuthService{
			RegisterUserFunc: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: auth})
		router := h.Init()

		rec := postForm(t, router, "/register", url.Values{}, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/register", rec.Header().Get("Location"))
	})

	t.Run("store outage is a server error", func(t *testing.T) {
		auth := &mockAuthService{
			RegisterUserFunc: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{}, store.ErrStoreUnavailable
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: auth})
		router := h.Init()

		rec := postForm(t, router, "/register", form, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("session establishment failure is a server error", func(t *testing.T) {
		auth := &mockAuthService{
			RegisterUserFunc: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{UserID: 1}, nil
			},
		}
		sessions := &mockSessionService{
			EstablishFunc: func(_ context.Context, _ models.User) (models.Session, error) {
				return models.Session{}, errors.New("session store down")
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: auth, SessionService: sessions})
		router := h.Init()

		rec := postForm(t, router, "/register", form, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Nil(t, sessionCookie(t, rec))
	})
}

func TestHandler_Login(t *testing.T) {
	form := url.Values{"username": {"alice"}, "password": {"s3cret"}}

	t.Run("valid credentials set the cookie and land on the wall", func(t *testing.T) {
		auth := &mockAuthService{
			LoginFunc: func(_ context.Context, username, password string) (models.User, error) {
				assert.Equal(t, "alice", username)
				assert.Equal(t, "s3cret", password)
				return models.User{UserID: 1}, nil
			},
		}
		h := newTestHandler(t, &service.Services{
			AuthService:    auth,
			SessionService: establishedSession("tok-1", models.User{UserID: 1}),
		})
		router := h.Init()

		rec := postForm(t, router, "/login", form, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/secrets", rec.Header().Get("Location"))

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "tok-1", cookie.Value)
	})

	t.Run("rejected credentials bounce back with the failure flag", func(t *testing.T) {
		auth := &mockAuthService{
			LoginFunc: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{}, service.ErrInvalidCredentials
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: auth})
		router := h.Init()

		rec := postForm(t, router, "/login", form, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?failed=1", rec.Header().Get("Location"))
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("store outage is a server error, not a failed login", func(t *testing.T) {
		auth := &mockAuthService{
			LoginFunc: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{}, store.ErrStoreUnavailable
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: auth})
		router := h.Init()

		rec := postForm(t, router, "/login", form, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	user := models.User{UserID: 1}
	cookie := &http.Cookie{Name: sessionCookieName, Value: "tok-1"}

	t.Run("terminates the session and clears the cookie", func(t *testing.T) {
		terminated := ""
		sessions := establishedSession("tok-1", user)
		sessions.TerminateFunc = func(_ context.Context, token string) error {
			terminated = token
			return nil
		}
		h := newTestHandler(t, &service.Services{SessionService: sessions})
		router := h.Init()

		rec := get(t, router, "/logout", cookie)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, "tok-1", terminated)

		cleared := sessionCookie(t, rec)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	})

	t.Run("logout without a cookie still lands on home", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{SessionService: &mockSessionService{}})
		router := h.Init()

		rec := get(t, router, "/logout", nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("unreachable session store is a server error", func(t *testing.T) {
		sessions := establishedSession("tok-1", user)
		sessions.TerminateFunc = func(_ context.Context, _ string) error {
			return service.ErrLogout
		}
		h := newTestHandler(t, &service.Services{SessionService: sessions})
		router := h.Init()

		rec := get(t, router, "/logout", cookie)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
