package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibrahimlogs/folio/internal/canonical"
)

func TestMapV4SocialSourcePrecedence(t *testing.T) {
	t.Parallel()

	t.Run("siteConfig bare keys win", func(t *testing.T) {
		t.Parallel()
		m := MapV4(doc(t, `{
			"siteConfig": {"github": "https://github.com/cfg"},
			"socialLinks": {"github": "https://github.com/links"}
		}`))
		require.Equal(t, "https://github.com/cfg", m.Site.Social.GitHub)
	})

	t.Run("object-shaped socialLinks fallback", func(t *testing.T) {
		t.Parallel()
		m := MapV4(doc(t, `{"socialLinks": {"github": "https://github.com/links", "email": "v4@example.com"}}`))
		require.Equal(t, "https://github.com/links", m.Site.Social.GitHub)
		require.Equal(t, "v4@example.com", m.Site.Social.Email)
	})
}

func TestMapV4AvailabilityObjectForm(t *testing.T) {
	t.Parallel()

	m := MapV4(doc(t, `{"siteConfig": {"availability": {"status": "BOOKED", "note": "until spring"}}}`))
	require.Equal(t, "BOOKED", m.Site.Branding.Availability.Status)
	require.Equal(t, "until spring", m.Site.Branding.Availability.Note)

	m = MapV4(doc(t, `{"siteConfig": {"availability_status": "BOOKED"}}`))
	require.Equal(t, "AVAILABLE", m.Site.Branding.Availability.Status, "flat fields are a v2 convention the v4 mapper ignores")
}

func TestMapV4HeroCTA(t *testing.T) {
	t.Parallel()

	t.Run("defaults when cta absent", func(t *testing.T) {
		t.Parallel()
		m := MapV4(doc(t, `{}`))
		require.Equal(t, canonical.CTA{Label: "View Projects", Href: "#projects"}, m.Sections.Hero.PrimaryCTA)
	})

	t.Run("configured cta with partial fields", func(t *testing.T) {
		t.Parallel()
		m := MapV4(doc(t, `{"sections": {"hero": [{"settings": {"cta": {"primary": {"url": "#work"}}}}]}}`))
		require.Equal(t, canonical.CTA{Label: "View projects", Href: "#work"}, m.Sections.Hero.PrimaryCTA)
	})
}

func TestMapV4NavDefaultsOnlyWhenAbsent(t *testing.T) {
	t.Parallel()

	m := MapV4(doc(t, `{"siteConfig": {"navigation": {"header": []}}}`))
	require.Empty(t, m.Site.Navigation.Header, "an explicitly empty header list is respected")

	m = MapV4(doc(t, `{}`))
	require.Len(t, m.Site.Navigation.Header, 6)
}

func TestMapV4ProjectsFilters(t *testing.T) {
	t.Parallel()

	m := MapV4(doc(t, `{}`))
	require.Equal(t, []string{"All"}, m.Sections.Projects.Filters)

	m = MapV4(doc(t, `{"projects": [{"slug": "p", "links": {"url": "https://u"}}]}`))
	require.Equal(t, "https://u", m.Sections.Projects.Items[0].Href, "v4 reads links.url, not links.repo")
}

func TestMapV4FooterSettingsPassThrough(t *testing.T) {
	t.Parallel()

	t.Run("default bento when settings absent", func(t *testing.T) {
		t.Parallel()
		m := MapV4(doc(t, `{"siteConfig": {"site_name": "Ada", "tagline": "Engineer"}}`))
		require.Equal(t, "Ada", m.Sections.Footer.Bento.ProfileCard.Name)
		require.Equal(t, "Engineer", m.Sections.Footer.Bento.ProfileCard.TitleLine)
		require.Equal(t, "Let’s build", m.Sections.Footer.Bento.CTACard.Headline)
	})

	t.Run("configured settings mapped", func(t *testing.T) {
		t.Parallel()
		m := MapV4(doc(t, `{"sections": {"footer": [{"settings": {
			"bento": {"profileCard": {"name": "Configured", "techChips": ["Go"]}},
			"credits": {"left": "hand-made"}
		}}]}}`))
		require.Equal(t, "Configured", m.Sections.Footer.Bento.ProfileCard.Name)
		require.Equal(t, []string{"Go"}, m.Sections.Footer.Bento.ProfileCard.TechChips)
		require.Equal(t, "hand-made", m.Sections.Footer.Credits.Left)
	})
}
