// Package view renders the server's HTML pages from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/secretwall/secretwall/models"
)

//go:embed templates/*.html.tmpl
var templatesFS embed.FS

const layoutTemplate = "templates/layout.html.tmpl"

// pages are the page templates composed with the shared layout.
var pages = []string{"home", "login", "register", "secrets", "submit"}

// LoginData parameterises the login page.
type LoginData struct {
	// Failed marks a rejected credential attempt so the page can show a
	// notice without leaking which part was wrong.
	Failed bool
}

// SecretsData parameterises the public secrets wall.
type SecretsData struct {
	Entries []models.SecretEntry
}

// Renderer holds the parsed page templates. All parsing happens at
// construction, so a broken template fails startup instead of a request.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		tmpl, err := template.ParseFS(templatesFS, layoutTemplate, "templates/"+name+".html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parsing page template %q failed: %w", name, err)
		}
		parsed[name] = tmpl
	}

	return &Renderer{pages: parsed}, nil
}

// Render writes the named page to w. User-supplied values in data are
// HTML-escaped by html/template.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering page %q failed: %w", page, err)
	}

	return nil
}
