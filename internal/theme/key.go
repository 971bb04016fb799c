// Package theme resolves which of the four portfolio themes is active and
// dispatches rendering to the matching renderer.
package theme

import (
	"fmt"
	"strings"

	"github.com/ibrahimlogs/folio/internal/jsondoc"
)

// Key identifies one of the four theme families.
type Key string

const (
	V1 Key = "v1"
	V2 Key = "v2"
	V3 Key = "v3"
	V4 Key = "v4"
)

// Keys lists every valid theme key.
func Keys() []Key {
	return []Key{V1, V2, V3, V4}
}

// ParseKey strictly parses a canonical theme key. Unlike ResolveKey it does
// not accept aliases and does not default.
func ParseKey(s string) (Key, error) {
	switch k := Key(strings.ToLower(strings.TrimSpace(s))); k {
	case V1, V2, V3, V4:
		return k, nil
	}
	return V1, fmt.Errorf("unknown theme key %q", s)
}

// ResolveKey normalizes the first present candidate to a theme key. The
// first non-null candidate decides alone: an unrecognized value defaults to
// v1 without consulting later candidates. Total over all inputs.
func ResolveKey(candidates ...any) Key {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		return normalizeKey(c)
	}
	return V1
}

func normalizeKey(raw any) Key {
	k := strings.TrimSpace(strings.ToLower(jsondoc.Wrap(raw).Stringify("")))
	switch k {
	case "2", "v2", "version2":
		return V2
	case "3", "v3", "version3":
		return V3
	case "4", "v4", "version4":
		return V4
	}
	return V1
}

// candidatePaths is the configuration precedence for the active theme. The
// order matches the backend contract and must not be reordered.
var candidatePaths = [][]string{
	{"portfolioSettings", "active_version"},
	{"siteConfig", "active_portfolio"},
	{"siteConfig", "portfolio_version"},
	{"siteConfig", "template"},
	{"siteConfig", "theme"},
}

// CandidatesFrom extracts the theme-key candidates from a raw site document
// in precedence order.
func CandidatesFrom(doc jsondoc.Value) []any {
	out := make([]any, 0, len(candidatePaths))
	for _, path := range candidatePaths {
		out = append(out, doc.Get(path...).Raw())
	}
	return out
}

// ResolveFromDocument resolves the active theme for a raw site document.
func ResolveFromDocument(doc jsondoc.Value) Key {
	return ResolveKey(CandidatesFrom(doc)...)
}
