package mapper

import (
	"strings"

	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/jsondoc"
)

// section unwraps the single-record seeding of a named section: sections
// arrive as single-element arrays, so element [0] is taken before reading
// nested settings.
func section(doc jsondoc.Value, name string) jsondoc.Value {
	return doc.Get("sections", name).First()
}

// siteConfig tolerates both spellings of the config block.
func siteConfig(doc jsondoc.Value) jsondoc.Value {
	return jsondoc.Coalesce(doc.Get("siteConfig"), doc.Get("site_config"))
}

// socialMap flattens the social-link records into platform→URL, preferring
// the top-level socialLinks list and falling back to the footer section's.
func socialMap(doc jsondoc.Value, footerSection jsondoc.Value) map[string]string {
	links := doc.Get("socialLinks")
	if !links.IsArr() {
		links = footerSection.Get("social_links")
	}

	out := map[string]string{}
	for _, item := range links.Arr() {
		key := strings.ToLower(jsondoc.Coalesce(item.Get("platform"), item.Get("key")).Stringify(""))
		href := jsondoc.FirstNonEmpty(item.Get("url").Str(""), item.Get("href").Str(""))
		if key == "" || href == "" {
			continue
		}
		out[key] = href
	}
	return out
}

// navItems converts a raw navigation list, substituting defaults when the
// list is absent or empty.
func navItems(raw jsondoc.Value, defaults []canonical.NavItem) []canonical.NavItem {
	items := raw.Arr()
	if len(items) == 0 {
		return defaults
	}
	out := make([]canonical.NavItem, 0, len(items))
	for _, item := range items {
		out = append(out, canonical.NavItem{
			ID:    item.Get("id").Str(""),
			Label: item.Get("label").Str(""),
			Href:  item.Get("href").Str(""),
		})
	}
	return out
}

func defaultHeaderNav() []canonical.NavItem {
	return []canonical.NavItem{
		{ID: "home", Label: "Home", Href: "#home"},
		{ID: "about", Label: "About", Href: "#about"},
		{ID: "projects", Label: "Projects", Href: "#projects"},
		{ID: "skills", Label: "Skills", Href: "#skills"},
		{ID: "experience", Label: "Experience", Href: "#experience"},
		{ID: "contact", Label: "Contact", Href: "#contact"},
	}
}

// projectTags applies the documented precedence: a tags-like field before a
// meta.type-like field, else empty.
func projectTags(p jsondoc.Value) jsondoc.Value {
	tags := p.Get("tags")
	if !tags.IsArr() {
		tags = p.Get("meta", "type")
	}
	return tags
}

// projectBadges prefers stack over tech_stack over tags, dropping empties
// and capping at six chips.
func projectBadges(p jsondoc.Value, tags jsondoc.Value) []string {
	src := p.Get("stack")
	if !src.IsArr() {
		src = p.Get("tech_stack")
	}
	if !src.IsArr() {
		src = tags
	}
	badges := src.Strings()
	if len(badges) > 6 {
		badges = badges[:6]
	}
	return badges
}

func radarAxes(raw jsondoc.Value) []canonical.RadarAxis {
	items := raw.Arr()
	out := make([]canonical.RadarAxis, 0, len(items))
	for _, item := range items {
		out = append(out, canonical.RadarAxis{
			Label: jsondoc.FirstNonEmpty(item.Get("label").Str(""), item.Get("name").Str("")),
			Value: item.Get("value").Num(0),
		})
	}
	return out
}

func skillGroups(raw jsondoc.Value) []canonical.SkillGroup {
	items := raw.Arr()
	out := make([]canonical.SkillGroup, 0, len(items))
	for _, c := range items {
		itemsField := c.Get("items")
		if !itemsField.IsArr() {
			itemsField = c.Get("skills")
		}
		out = append(out, canonical.SkillGroup{
			Name:  c.Get("name").Str("Skills"),
			Items: itemsField.Strings(),
		})
	}
	return out
}

// keepPopulatedGroups drops groups with no name or no items.
func keepPopulatedGroups(groups []canonical.SkillGroup) []canonical.SkillGroup {
	out := make([]canonical.SkillGroup, 0, len(groups))
	for _, g := range groups {
		if g.Name != "" && len(g.Items) > 0 {
			out = append(out, g)
		}
	}
	return out
}

func formFields(raw jsondoc.Value, nameKeys ...string) []canonical.FormField {
	items := raw.Arr()
	out := make([]canonical.FormField, 0, len(items))
	for _, f := range items {
		name := ""
		for _, key := range nameKeys {
			if name = f.Get(key).Str(""); name != "" {
				break
			}
		}
		out = append(out, canonical.FormField{
			Name:        name,
			Label:       f.Get("label").Str(""),
			Placeholder: f.Get("placeholder").Str(""),
			Type:        f.Get("type").Str("text"),
			Required:    f.Get("required").Bool(),
			MinLength:   int(f.Get("minLength").Num(0)),
		})
	}
	return out
}

func mailtoPreview(raw jsondoc.Value) canonical.MailtoPreview {
	return canonical.MailtoPreview{
		Enabled:         raw.Get("enabled").Bool(),
		To:              raw.Get("to").Str(""),
		SubjectTemplate: raw.Get("subjectTemplate").Str(""),
		BodyTemplate:    raw.Get("bodyTemplate").Str(""),
		Template:        raw.Get("template").Str("mailto:{to}?subject={subject}&body={body}"),
		Label:           raw.Get("label").Str("Preview mailto link"),
	}
}

func actions(raw jsondoc.Value, defaults []canonical.Action) []canonical.Action {
	if !raw.IsArr() {
		return defaults
	}
	items := raw.Arr()
	out := make([]canonical.Action, 0, len(items))
	for _, a := range items {
		out = append(out, canonical.Action{
			ID:    a.Get("id").Str(""),
			Label: a.Get("label").Str(""),
			Href:  jsondoc.FirstNonEmpty(a.Get("href").Str(""), a.Get("url").Str("")),
		})
	}
	return out
}

func ctaLinks(raw jsondoc.Value, defaults []canonical.CTA) []canonical.CTA {
	if !raw.IsArr() {
		return defaults
	}
	items := raw.Arr()
	out := make([]canonical.CTA, 0, len(items))
	for _, l := range items {
		out = append(out, canonical.CTA{
			Label: l.Get("label").Str(""),
			Href:  jsondoc.FirstNonEmpty(l.Get("href").Str(""), l.Get("url").Str("")),
		})
	}
	return out
}

func principles(raw jsondoc.Value) []canonical.Principle {
	items := raw.Arr()
	out := make([]canonical.Principle, 0, len(items))
	for _, p := range items {
		out = append(out, canonical.Principle{
			Title:       p.Get("title").Str(""),
			Description: p.Get("description").Str(""),
		})
	}
	return out
}

// firstSixItems flattens group items into the footer tech chips default.
func firstSixItems(groups []canonical.SkillGroup) []string {
	out := []string{}
	for _, g := range groups {
		for _, item := range g.Items {
			if item == "" {
				continue
			}
			out = append(out, item)
			if len(out) == 6 {
				return out
			}
		}
	}
	return out
}
