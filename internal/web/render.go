// Package web renders the application's HTML pages from embedded
// templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nkotak/student-collab/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{"index", "create_post", "register_post", "profile", "signup", "login"}

// PageData carries everything a page template may need. Unused fields stay
// zero-valued.
type PageData struct {
	Username      string
	Flash         string
	Posts         []models.Post
	Post          *models.Post
	UserPosts     []models.Post
	Registrations []models.Registration
}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded page templates against the shared layout.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page. The page is executed into a buffer first so
// a template failure never produces a half-written response.
func (rd *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) {
	t, ok := rd.templates[page]
	if !ok {
		log.Error().Str("page", page).Msg("Unknown template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("Failed to render template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
