package http

import (
	"bytes"
	"net/http"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/view"
)

// renderPage renders into a buffer first so a template failure can still
// become a clean 500 instead of a half-written page.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page string, data any) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		log.Err(err).Str("page", page).Msg("page rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("page", page).Msg("writing page response failed")
	}
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "home", nil)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "register", nil)
}

// loginPage renders the login form. A "failed" query parameter, set by a
// rejected login attempt, switches on the failure notice.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "login", view.LoginData{
		Failed: r.URL.Query().Get("failed") != "",
	})
}

func (h *Handler) submitPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "submit", nil)
}
