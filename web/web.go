// Package web holds the embedded templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/kdimtricp/repcheck/internal/models"
)

//go:embed templates static
var files embed.FS

// Static serves the embedded static directory.
func Static() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// Templates holds every page parsed against the shared layout and partials.
type Templates struct {
	pages map[string]*template.Template
	base  *template.Template
}

var funcs = template.FuncMap{
	"scoreColor":      models.ScoreColor,
	"confidenceColor": models.ConfidenceColor,
	"percent":         models.Percent,
	"add":             func(a, b int) int { return a + b },
}

// Load parses the layout and partials once, then clones them for each page
// so every page can define its own "title" and "content".
func Load() (*Templates, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	pageFiles, err := fs.Glob(files, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout: %w", err)
		}
		tmpl, err := clone.ParseFS(files, file)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		pages[name] = tmpl
	}

	return &Templates{pages: pages, base: base}, nil
}

// Render executes a full page through the layout.
func (t *Templates) Render(w io.Writer, page string, data interface{}) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// RenderPartial executes a named partial for htmx swaps.
func (t *Templates) RenderPartial(w io.Writer, name string, data interface{}) error {
	if t.base.Lookup(name) == nil {
		return fmt.Errorf("partial %q not found", name)
	}
	return t.base.ExecuteTemplate(w, name, data)
}
