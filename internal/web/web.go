// Package web serves the site's HTML shell. Pages render from embedded
// templates and load their content client-side from the JSON API.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type page struct {
	Name  string
	Title string
}

var pages = map[string]page{
	"/":            {Name: "home", Title: "White Rose Speakers"},
	"/blog":        {Name: "blog", Title: "Blog"},
	"/events":      {Name: "events", Title: "Events"},
	"/gallery":     {Name: "gallery", Title: "Gallery"},
	"/team":        {Name: "team", Title: "Our Team"},
	"/contact":     {Name: "contact", Title: "Contact Us"},
	"/admin/login": {Name: "admin_login", Title: "Admin Login"},
	"/admin":       {Name: "admin", Title: "Admin Dashboard"},
}

type Handler struct {
	templates *template.Template
}

func New() (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Handler{templates: tmpl}, nil
}

// Register mounts the page routes on the router. API routes must be
// registered first; these are catch-alls within their paths.
func (h *Handler) Register(r *mux.Router) {
	for path := range pages {
		r.HandleFunc(path, h.servePage).Methods(http.MethodGet)
	}
	r.HandleFunc("/blog/{slug}", h.serveArticle).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.FileServer(http.FS(staticFS))).Methods(http.MethodGet)
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	p, ok := pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, p, nil)
}

func (h *Handler) serveArticle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	h.render(w, r, page{Name: "article", Title: "Blog"}, map[string]string{"Slug": slug})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, p page, data map[string]string) {
	payload := map[string]any{"Title": p.Title, "Page": p.Name}
	for k, v := range data {
		payload[k] = v
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, p.Name+".gohtml", payload); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("page", p.Name).Msg("template render failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
