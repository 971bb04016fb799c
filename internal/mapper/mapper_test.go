package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/jsondoc"
	"github.com/ibrahimlogs/folio/internal/theme"
)

func doc(t *testing.T, payload string) jsondoc.Value {
	t.Helper()
	v, err := jsondoc.Decode([]byte(payload))
	require.NoError(t, err)
	return v
}

// requireComplete asserts the no-nil-leak invariant: every list field must be
// a non-nil slice even when the source document carried nothing.
func requireComplete(t *testing.T, m canonical.Model) {
	t.Helper()

	require.NotNil(t, m.Site.Navigation.Header)
	require.NotNil(t, m.Site.Navigation.FooterPrimary)
	require.NotNil(t, m.Site.Navigation.FooterUtility)
	require.NotNil(t, m.Sections.Hero.StatusChips)
	require.NotNil(t, m.Sections.Hero.TerminalCard.Highlights)
	require.NotNil(t, m.Sections.About.Paragraphs)
	require.NotNil(t, m.Sections.About.Callouts.Items)
	require.NotNil(t, m.Sections.About.Principles)
	require.NotNil(t, m.Sections.Projects.Filters)
	require.NotNil(t, m.Sections.Projects.Items)
	require.NotNil(t, m.Sections.Skills.Groups)
	require.NotNil(t, m.Sections.Skills.Radar.Axes)
	require.NotNil(t, m.Sections.Experience.Items)
	require.NotNil(t, m.Sections.Contact.Form.Fields)
	require.NotNil(t, m.Sections.Contact.DirectLine.Actions)
	require.NotNil(t, m.Sections.Footer.Bento.ProfileCard.TechChips)
	require.NotNil(t, m.Sections.Footer.Bento.ConnectCard.Links)
	require.NotNil(t, m.Sections.Footer.Bento.CTACard.Links)

	require.NotEmpty(t, m.Site.Social.GitHub)
	require.NotEmpty(t, m.Site.Social.LinkedIn)
	require.NotEmpty(t, m.Site.Social.Twitter)
	require.NotEmpty(t, m.Site.Social.Email)
	require.NotEmpty(t, m.Site.Social.WhatsApp)
	require.NotEmpty(t, m.Site.Social.Discord)
}

func TestEveryMapperToleratesEmptyDocument(t *testing.T) {
	t.Parallel()

	for _, key := range theme.Keys() {
		t.Run(string(key), func(t *testing.T) {
			t.Parallel()
			m := ForTheme(key)(doc(t, `{}`))
			requireComplete(t, m)
		})
	}
}

func TestEveryMapperToleratesNullSections(t *testing.T) {
	t.Parallel()

	payload := `{"sections": null, "projects": null, "experiences": null, "skills": null, "siteConfig": null}`
	for _, key := range theme.Keys() {
		t.Run(string(key), func(t *testing.T) {
			t.Parallel()
			requireComplete(t, ForTheme(key)(doc(t, payload)))
		})
	}
}

func TestMapV2DefaultsForEmptyDocument(t *testing.T) {
	t.Parallel()

	m := MapV2(doc(t, `{}`))

	require.Equal(t, "Your Name", m.Site.Branding.Name)
	require.Equal(t, "Full-stack Engineer", m.Site.Branding.Role)
	require.Equal(t, "Remote", m.Site.Branding.Location)
	require.Equal(t, "AVAILABLE", m.Site.Branding.Availability.Status)
	require.Equal(t, "#", m.Site.Social.GitHub)
	require.Equal(t, "email@example.com", m.Site.Social.Email)
	require.Len(t, m.Site.Navigation.Header, 6)

	require.Equal(t, canonical.CTA{Label: "View Projects", Href: "#projects"}, m.Sections.Hero.PrimaryCTA)
	require.Equal(t, canonical.CTA{Label: "Contact", Href: "#contact"}, m.Sections.Hero.SecondaryCTA)
	require.Equal(t, "cat ./signals.txt", m.Sections.Hero.TerminalCard.Title)
	require.Len(t, m.Sections.Hero.TerminalCard.Highlights, 2)
	require.Equal(t, "Open", m.Sections.Hero.TerminalCard.Highlights[0].Label)

	require.Equal(t, []string{"All", "Open Source", "Performance", "UI", "Misc"}, m.Sections.Projects.Filters)
	require.Equal(t, "Search projects...", m.Sections.Projects.Search.Placeholder)
	require.Equal(t, "I typically reply within 24–48 hours.", m.Sections.Contact.ResponseTime)
	require.Len(t, m.Sections.Contact.Form.Fields, 4)
	require.Equal(t, []string{"React", "TypeScript", "Next.js"}, m.Sections.Footer.Bento.ProfileCard.TechChips)
	require.Equal(t, "© 2026 — All rights reserved", m.Sections.Footer.Credits.Right)
}

func TestMapV2EndToEndScenario(t *testing.T) {
	t.Parallel()

	raw := doc(t, `{"sections": {"hero": [{"headline": "Hi"}]}}`)
	m := MapV2(raw)

	require.Equal(t, "Hi", m.Sections.Hero.Headline)
	require.Equal(t, "Full-stack Engineer", m.Sections.Hero.Subheadline)
	require.Equal(t, canonical.CTA{Label: "View Projects", Href: "#projects"}, m.Sections.Hero.PrimaryCTA)
	require.Equal(t, theme.V1, theme.ResolveFromDocument(raw))
}

func TestMapV2IsPure(t *testing.T) {
	t.Parallel()

	payload := `{
		"siteConfig": {"site_name": "Ada", "tagline": "Engineer"},
		"sections": {"hero": [{"headline": "Hello"}]},
		"projects": [{"title": "One", "tags": ["Go"]}],
		"experiences": [{"role": "Dev", "company": "Acme"}]
	}`

	raw := doc(t, payload)
	first := MapV2(raw)
	second := MapV2(raw)
	require.Equal(t, first, second)
}

func TestProjectTagPrecedence(t *testing.T) {
	t.Parallel()

	t.Run("tags beat meta.type", func(t *testing.T) {
		t.Parallel()
		m := MapV2(doc(t, `{"projects": [{"tags": ["A"], "meta": {"type": ["B"]}}]}`))
		require.Equal(t, []string{"A"}, m.Sections.Projects.Items[0].Badges)
	})

	t.Run("meta.type when tags absent", func(t *testing.T) {
		t.Parallel()
		m := MapV2(doc(t, `{"projects": [{"meta": {"type": ["B"]}}]}`))
		require.Equal(t, []string{"B"}, m.Sections.Projects.Items[0].Badges)
	})

	t.Run("stack beats tech_stack beats tags", func(t *testing.T) {
		t.Parallel()
		m := MapV2(doc(t, `{"projects": [{"stack": ["S"], "tech_stack": ["T"], "tags": ["A"]}]}`))
		require.Equal(t, []string{"S"}, m.Sections.Projects.Items[0].Badges)

		m = MapV2(doc(t, `{"projects": [{"tech_stack": ["T"], "tags": ["A"]}]}`))
		require.Equal(t, []string{"T"}, m.Sections.Projects.Items[0].Badges)
	})

	t.Run("badges capped at six", func(t *testing.T) {
		t.Parallel()
		m := MapV2(doc(t, `{"projects": [{"stack": ["1","2","3","4","5","6","7","8"]}]}`))
		require.Len(t, m.Sections.Projects.Items[0].Badges, 6)
	})
}

func TestProjectHrefPrecedence(t *testing.T) {
	t.Parallel()

	m := MapV2(doc(t, `{"projects": [
		{"links": {"live": "https://live", "repo": "https://repo"}, "url": "https://url"},
		{"links": {"repo": "https://repo"}},
		{"url": "https://url"},
		{"link": "https://link"},
		{}
	]}`))

	items := m.Sections.Projects.Items
	require.Equal(t, "https://live", items[0].Href)
	require.Equal(t, "https://repo", items[1].Href)
	require.Equal(t, "https://url", items[2].Href)
	require.Equal(t, "https://link", items[3].Href)
	require.Equal(t, "#", items[4].Href)
}

func TestProjectIdentityAndYearCoercion(t *testing.T) {
	t.Parallel()

	m := MapV2(doc(t, `{"projects": [
		{"slug": "folio", "meta": {"year": 2024}},
		{"id": 17, "year": "2022"},
		{}
	]}`))

	items := m.Sections.Projects.Items
	require.Equal(t, "folio", items[0].ID)
	require.Equal(t, "2024", items[0].Year)
	require.Equal(t, "17", items[1].ID)
	require.Equal(t, "2022", items[1].Year)
	require.Equal(t, "project", items[2].ID)
	require.Equal(t, "Untitled Project", items[2].Title)
}

func TestExperienceMapping(t *testing.T) {
	t.Parallel()

	m := MapV2(doc(t, `{"experiences": [
		{"role": "Engineer", "company": "Acme", "start_date": "2021", "end_date": "2023", "is_current": false, "bullets": ["a", "b"], "tags": ["Go"]},
		{"title": "Founder", "org": "Side", "is_current": true, "meta": {"tags": ["TS"]}},
		{}
	]}`))

	items := m.Sections.Experience.Items
	require.Equal(t, "Engineer", items[0].Title)
	require.Equal(t, "2023", items[0].End)
	require.Equal(t, []string{"a", "b"}, items[0].Highlights)

	require.Equal(t, "Founder", items[1].Title)
	require.Equal(t, "Side", items[1].Company)
	require.Equal(t, "Present", items[1].End, "is_current wins over a missing end date")
	require.Equal(t, []string{"TS"}, items[1].Tech)

	require.Equal(t, "Role", items[2].Title)
	require.Equal(t, "Company", items[2].Company)
}

func TestSkillGroupSourcePrecedence(t *testing.T) {
	t.Parallel()

	t.Run("backend categories win", func(t *testing.T) {
		t.Parallel()
		m := MapV2(doc(t, `{
			"skills": {"categories": [{"name": "Backend", "items": ["Go"]}]},
			"sections": {"skills": [{"settings": {"groups": [{"name": "Ignored", "items": ["X"]}]}}]}
		}`))
		require.Equal(t, []canonical.SkillGroup{{Name: "Backend", Items: []string{"Go"}}}, m.Sections.Skills.Groups)
	})

	t.Run("settings groups as fallback", func(t *testing.T) {
		t.Parallel()
		m := MapV2(doc(t, `{"sections": {"skills": [{"settings": {"groups": [{"name": "Tools", "items": ["Git"]}]}}]}}`))
		require.Equal(t, []canonical.SkillGroup{{Name: "Tools", Items: []string{"Git"}}}, m.Sections.Skills.Groups)
	})

	t.Run("empty groups are dropped", func(t *testing.T) {
		t.Parallel()
		m := MapV2(doc(t, `{"skills": {"categories": [{"name": "Empty", "items": []}, {"name": "Kept", "skills": ["Go"]}]}}`))
		require.Equal(t, []canonical.SkillGroup{{Name: "Kept", Items: []string{"Go"}}}, m.Sections.Skills.Groups)
	})
}

func TestSocialLinkFallbacks(t *testing.T) {
	t.Parallel()

	m := MapV2(doc(t, `{
		"socialLinks": [
			{"platform": "GitHub", "url": "https://github.com/ada"},
			{"key": "twitter", "href": "https://x.com/ada"},
			{"platform": "", "url": "https://nowhere"},
			{"platform": "discord"}
		]
	}`))

	require.Equal(t, "https://github.com/ada", m.Site.Social.GitHub)
	require.Equal(t, "https://x.com/ada", m.Site.Social.Twitter)
	require.Equal(t, "#", m.Site.Social.Discord, "entry without href is skipped")
}

func TestFooterConnectLinksFilterPlaceholders(t *testing.T) {
	t.Parallel()

	m := MapV2(doc(t, `{"siteConfig": {"github_url": "https://github.com/ada", "email": "ada@example.com"}}`))

	links := m.Sections.Footer.Bento.ConnectCard.Links
	require.Len(t, links, 3, "github, linkedin placeholder dropped, email kept")

	var keys []string
	for _, l := range links {
		keys = append(keys, l.Key)
	}
	require.NotContains(t, keys, "linkedin")
	require.Contains(t, keys, "github")
	require.Contains(t, keys, "email")
}

func TestMapV3ReusesV2(t *testing.T) {
	t.Parallel()

	raw := doc(t, `{
		"siteConfig": {"site_name": "Ada"},
		"sections": {"hero": [{"headline": "Hello"}]},
		"projects": [{"title": "One"}]
	}`)
	require.Equal(t, MapV2(raw), MapV3(raw))
}

func TestForThemeSelection(t *testing.T) {
	t.Parallel()

	v1 := ForTheme(theme.V1)(doc(t, `{}`))
	v2 := ForTheme(theme.V2)(doc(t, `{}`))
	require.Equal(t, "Press ⌘K for the command menu", v1.Sections.Hero.TerminalCard.Hint)
	require.Equal(t, "Tip: press ⌘K to jump around", v2.Sections.Hero.TerminalCard.Hint)
	require.Equal(t, "ready_to_collab()", v1.Sections.Hero.TerminalCard.Highlights[0].Label)
}
