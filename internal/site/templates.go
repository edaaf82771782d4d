package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/awc-hub/awchub/internal/assets"
	"github.com/awc-hub/awchub/internal/route"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// templates holds one parsed set per page, each sharing the layout.
type templates struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"detailURL": route.DetailURL,
	"download":  assets.Download,
	"join":      strings.Join,
}

// loadTemplates parses every page. image resolves record image names to URLs.
func loadTemplates(image func(name string) string) (*templates, error) {
	base, err := template.New("base").Funcs(funcs).Funcs(template.FuncMap{
		"image": image,
	}).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	t := &templates{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		page, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		t.pages[name] = page
	}
	return t, nil
}

// page is the data every template receives.
type page struct {
	Title      string
	SiteTitle  string
	Nav        []navItem
	LiveReload bool
	Data       any
}

type navItem struct {
	Label  string
	Path   string
	Active bool
}

func (s *Server) nav(active string) []navItem {
	items := make([]navItem, 0, len(sections))
	for _, sec := range sections {
		items = append(items, navItem{Label: sec.Nav, Path: sec.Path, Active: sec.Path == active})
	}
	return items
}

// render executes the named page into a buffer so template failures become a 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	tmpl, ok := s.templates.pages[name]
	if !ok {
		s.logger.Error("unknown template", "name", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.SiteTitle = s.title
	p.LiveReload = s.hub != nil

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		s.logger.Error("failed to render page", "name", name, "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}

type errorView struct {
	Message   string
	BackURL   string
	BackLabel string
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message, backURL, backLabel string) {
	s.render(w, r, status, "error", page{
		Title: http.StatusText(status),
		Nav:   s.nav(""),
		Data:  errorView{Message: message, BackURL: backURL, BackLabel: backLabel},
	})
}
