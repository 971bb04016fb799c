// Package render turns the canonical content model into HTML. One embedded
// template per theme; all four consume the same model.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/theme"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var ugcPolicy = bluemonday.UGCPolicy()

// funcMap is shared by every theme template. rich sanitizes user-authored
// paragraph content before marking it safe; everything else renders through
// html/template's default escaping.
var funcMap = template.FuncMap{
	"rich": func(s string) template.HTML {
		return template.HTML(ugcPolicy.Sanitize(s))
	},
	"join": strings.Join,
	"lower": strings.ToLower,
}

// HTMLRenderer renders one theme's template. It implements theme.Renderer.
type HTMLRenderer struct {
	key  theme.Key
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded template for a theme.
func NewHTMLRenderer(key theme.Key) (*HTMLRenderer, error) {
	name := fmt.Sprintf("%s.gohtml", key)
	tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse template for theme %s: %w", key, err)
	}
	return &HTMLRenderer{key: key, tmpl: tmpl}, nil
}

// Render writes the themed HTML document for the model.
func (r *HTMLRenderer) Render(w io.Writer, model canonical.Model) error {
	if err := r.tmpl.ExecuteTemplate(w, fmt.Sprintf("%s.gohtml", r.key), model); err != nil {
		return fmt.Errorf("render theme %s: %w", r.key, err)
	}
	return nil
}

// Registry builds a theme registry with all four HTML renderers installed.
func Registry() (*theme.Registry, error) {
	reg := theme.NewRegistry()
	for _, key := range theme.Keys() {
		renderer, err := NewHTMLRenderer(key)
		if err != nil {
			return nil, err
		}
		reg.Register(key, renderer)
	}
	return reg, nil
}
