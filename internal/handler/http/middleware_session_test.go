package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secretwall/secretwall/internal/service"
	"github.com/secretwall/secretwall/internal/store"
	"github.com/secretwall/secretwall/models"
)

func TestSessionContextMiddleware(t *testing.T) {
	user := models.User{UserID: 7}

	t.Run("a live cookie resolves to a principal", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{
			SessionService: establishedSession("tok-7", user),
		})
		router := h.Init()

		rec := get(t, router, "/submit", &http.Cookie{Name: sessionCookieName, Value: "tok-7"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Submit a Secret")
	})

	t.Run("an expired cookie behaves like no cookie on public pages", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{
			SessionService: establishedSession("tok-7", user),
		})
		router := h.Init()

		rec := get(t, router, "/", &http.Cookie{Name: sessionCookieName, Value: "stale"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("a session-store outage aborts the request", func(t *testing.T) {
		sessions := &mockSessionService{
			ResolveFunc: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, store.ErrStoreUnavailable
			},
		}
		h := newTestHandler(t, &service.Services{SessionService: sessions})
		router := h.Init()

		rec := get(t, router, "/", &http.Cookie{Name: sessionCookieName, Value: "tok-7"})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRequireSessionMiddleware(t *testing.T) {
	t.Run("anonymous requests are redirected to login", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{})
		router := h.Init()

		rec := get(t, router, "/submit", nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("an expired session is redirected to login", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{
			SessionService: establishedSession("tok-7", models.User{UserID: 7}),
		})
		router := h.Init()

		rec := get(t, router, "/submit", &http.Cookie{Name: sessionCookieName, Value: "stale"})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})
}
