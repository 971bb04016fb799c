package siteapi

import (
	"github.com/ibrahimlogs/folio/internal/jsondoc"
)

// FallbackDocument is the canned site document substituted when the content
// API is unreachable: minimal branding, seeded empty sections, and the v1
// theme active. A fresh copy is built per call so callers can never alias
// each other's document.
func FallbackDocument() jsondoc.Value {
	return jsondoc.Wrap(map[string]any{
		"siteConfig": map[string]any{
			"site_name":    "Portfolio",
			"tagline":      "Full-stack Developer",
			"github_url":   "#",
			"linkedin_url": "#",
		},
		"portfolioSettings": map[string]any{
			"active_version": "v1",
		},
		"navItems":    []any{},
		"socialLinks": []any{},
		"sections": map[string]any{
			"hero":       []any{map[string]any{"settings": map[string]any{}, "ctas": []any{}}},
			"about":      []any{map[string]any{}},
			"projects":   []any{map[string]any{}},
			"skills":     []any{map[string]any{}},
			"experience": []any{map[string]any{}},
			"contact":    []any{map[string]any{}},
			"footer":     []any{map[string]any{}},
		},
		"projects":    []any{},
		"experiences": []any{},
		"skills":      map[string]any{"categories": []any{}, "radars": []any{}},
		"highlights":  []any{},
		"principles":  []any{},
	})
}
