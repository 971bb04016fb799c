// Package mapper normalizes raw site documents into the canonical content
// model. One mapper exists per theme family; all of them are pure and total:
// any input, including an empty document, yields a fully-defaulted model.
package mapper

import (
	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/jsondoc"
	"github.com/ibrahimlogs/folio/internal/theme"
)

// Func maps a raw site document to the canonical content model.
type Func func(doc jsondoc.Value) canonical.Model

// ForTheme returns the mapper for a theme family. v2 and v3 share one
// mapper; v1 and v4 carry their own field precedences and fallback copy.
func ForTheme(key theme.Key) Func {
	switch key {
	case theme.V2:
		return MapV2
	case theme.V3:
		return MapV3
	case theme.V4:
		return MapV4
	default:
		return MapV1
	}
}
