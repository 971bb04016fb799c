// Package texttmpl performs {placeholder} substitution for the mailto
// preview feature. It is deliberately not a general templating engine.
package texttmpl

import (
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// Apply replaces every {token} with its value from vars. Unresolved
// placeholders render as the empty string.
func Apply(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		return vars[key]
	})
}
