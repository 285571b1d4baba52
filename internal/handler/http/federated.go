package http

import (
	"errors"
	"net/http"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/service"
)

// googleLogin starts the federated flow by redirecting the browser to the
// provider's consent page.
func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	consentURL, err := h.services.FederatedService.AuthCodeURL(r.Context())
	if err != nil {
		log.Err(err).Msg("building consent url failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, consentURL, http.StatusFound)
}

// googleCallback is the provider's redirect target. It completes the code
// exchange, finds or creates the local user for the external identity, and
// establishes a session.
//
// Denied consent and invalid state both send the browser back to the login
// page; a broken provider exchange is reported as a gateway failure.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()

	if errCode := query.Get("error"); errCode != "" {
		log.Debug().Str("error", errCode).Msg("provider denied the authorization")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	profile, err := h.services.FederatedService.CompleteExchange(ctx, query.Get("state"), query.Get("code"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProviderDenied):
			log.Err(err).Msg("callback state rejected")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("completing provider exchange failed")
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}
	}

	user, err := h.services.FederatedService.FindOrCreate(ctx, profile.ID)
	if err != nil {
		log.Err(err).Msg("resolving federated identity failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.establishSession(w, r, user, "/secrets")
}
