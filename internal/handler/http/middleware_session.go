package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/service"
	"github.com/secretwall/secretwall/internal/utils"
)

// sessionContext is an HTTP middleware that resolves the session cookie into
// a principal.
//
// When the request carries a session cookie, the raw token is stored in the
// request context under [utils.SessionTokenCtxKey] and the resolved user —
// if the session is live — under [utils.UserCtxKey]. An anonymous request
// (no cookie, unknown or expired token, stale user reference) passes through
// with no principal attached; only a session-store outage aborts the request
// with HTTP 500.
func (h *Handler) sessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			// no cookie: anonymous
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionTokenCtxKey, cookie.Value)

		user, err := h.services.SessionService.Resolve(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, service.ErrAnonymous) {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			log.Err(err).Msg("session resolution failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession guards routes that need a resolved principal. Anonymous
// requests are redirected to the login page.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
