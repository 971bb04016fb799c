package contact

import (
	"net/url"
	"strings"

	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/texttmpl"
)

const defaultMailtoTemplate = "mailto:{to}?subject={subject}&body={body}"

// MailtoLink renders the preview mailto href from the configured templates
// and the current form values. Returns "" when the preview is disabled.
// The subject is URL-escaped; the body is substituted as-is since configured
// body templates carry their own %0D%0A line breaks.
func MailtoLink(cfg canonical.MailtoPreview, siteName, fallbackTo string, values map[string]string) string {
	if !cfg.Enabled {
		return ""
	}

	to := cfg.To
	if to == "" {
		to = fallbackTo
	}

	vars := map[string]string{"siteName": siteName, "to": to}
	for k, v := range values {
		vars[k] = v
	}

	subject := texttmpl.Apply(cfg.SubjectTemplate, vars)
	body := texttmpl.Apply(cfg.BodyTemplate, vars)

	tpl := cfg.Template
	if tpl == "" {
		tpl = defaultMailtoTemplate
	}
	return texttmpl.Apply(tpl, map[string]string{
		"to":      to,
		"subject": escapeComponent(subject),
		"body":    body,
	})
}

// escapeComponent matches encodeURIComponent: spaces become %20, not +.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
