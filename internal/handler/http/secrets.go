package http

import (
	"net/http"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/utils"
	"github.com/secretwall/secretwall/internal/view"
)

// secrets renders the public wall. No session is required to read it.
func (h *Handler) secrets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries, err := h.services.SecretService.ListSecrets(r.Context())
	if err != nil {
		log.Err(err).Msg("listing secrets failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "secrets", view.SecretsData{Entries: entries})
}

// submit overwrites the caller's secret. requireSession guarantees a
// principal is present.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.services.SecretService.SubmitSecret(ctx, user.UserID, r.PostFormValue("secret")); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("submitting secret failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/secrets", http.StatusSeeOther)
}
