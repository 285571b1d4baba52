package http

import (
	"errors"
	"net/http"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/service"
	"github.com/secretwall/secretwall/internal/store"
	"github.com/secretwall/secretwall/internal/utils"
	"github.com/secretwall/secretwall/models"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "secretwall_session"

// setSessionCookie attaches the session token to the response. The cookie is
// HttpOnly so page scripts never see the token, and SameSite=Lax so the
// provider's top-level callback redirect still carries it.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// establishSession creates a session for user, sets the cookie, and issues
// the post-login redirect.
func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, user models.User, redirectTo string) {
	log := logger.FromRequest(r)

	session, err := h.services.SessionService.Establish(r.Context(), user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("establishing session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, session)
	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("registration rejected")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// the post-registration target is the relative "secrets"; http.Redirect
	// resolves it against /register, so the emitted Location is /secrets
	h.establishSession(w, r, registeredUser, "secrets")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Str("username", username).Msg("login rejected")
			http.Redirect(w, r, "/login?failed=1", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.establishSession(w, r, foundUser, "/secrets")
}

// logout terminates the server-side session and clears the cookie. Visiting
// /logout without a session is harmless and still lands on the home page.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if token, ok := utils.GetSessionTokenFromContext(ctx); ok {
		if err := h.services.SessionService.Terminate(ctx, token); err != nil {
			log.Err(err).Msg("terminating session failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
