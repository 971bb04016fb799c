package mapper

import (
	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/jsondoc"
)

// MapV2 is the shared mapper for the v2 theme family.
func MapV2(doc jsondoc.Value) canonical.Model {
	cfg := siteConfig(doc)

	heroSection := section(doc, "hero")
	aboutSection := section(doc, "about")
	projectsSection := section(doc, "projects")
	skillsSection := section(doc, "skills")
	experienceSection := section(doc, "experience")
	contactSection := section(doc, "contact")
	footerSection := section(doc, "footer")

	heroSettings := heroSection.Get("settings")
	aboutSettings := aboutSection.Get("settings")
	projectsSettings := projectsSection.Get("settings")
	skillsSettings := skillsSection.Get("settings")
	contactSettings := contactSection.Get("settings")
	footerSettings := footerSection.Get("settings")

	ctas := heroSection.Get("ctas")
	primaryCta := jsondoc.Coalesce(heroSettings.Get("cta", "primary"), ctas.Index(0))
	secondaryCta := jsondoc.Coalesce(heroSettings.Get("cta", "secondary"), ctas.Index(1))

	projects := mapV2Projects(doc)
	experiences := mapV2Experiences(doc)
	groups := mapV2SkillGroups(doc, skillsSettings)

	social := socialMap(doc, footerSection)
	email := jsondoc.FirstNonEmpty(
		cfg.Get("email").Str(""),
		cfg.Get("contact_email").Str(""),
		social["email"],
		"email@example.com",
	)
	github := jsondoc.FirstNonEmpty(cfg.Get("github_url").Str(""), social["github"], "#")
	linkedin := jsondoc.FirstNonEmpty(cfg.Get("linkedin_url").Str(""), social["linkedin"], "#")

	siteName := cfg.Get("site_name").Str("Your Name")
	tagline := cfg.Get("tagline").Str("Full-stack Engineer")

	techChips := firstSixItems(groups)

	connectLinks := []canonical.ConnectLink{}
	for _, link := range []canonical.ConnectLink{
		{Platform: "GitHub", Key: "github", Href: github},
		{Platform: "LinkedIn", Key: "linkedin", Href: linkedin},
		{Platform: "Email", Key: "email", Href: "mailto:" + email},
	} {
		if link.Href != "" && link.Href != "#" {
			connectLinks = append(connectLinks, link)
		}
	}

	return canonical.Model{
		Site: canonical.Site{
			Meta: canonical.Meta{
				Title:       cfg.Get("site_name").Str("My Portfolio"),
				Description: cfg.Get("meta_description").Str(cfg.Get("tagline").Str("")),
				Language:    "en",
			},
			Branding: canonical.Branding{
				Name:     siteName,
				Handle:   cfg.Get("handle").Str(siteName),
				Role:     tagline,
				Location: heroSettings.Get("meta", "location").Str(cfg.Get("location").Str("Remote")),
				Availability: canonical.Availability{
					Status: cfg.Get("availability_status").Str("AVAILABLE"),
					Note:   cfg.Get("availability_note").Str(""),
				},
			},
			Social: canonical.Social{
				GitHub:   github,
				LinkedIn: linkedin,
				Twitter:  jsondoc.FirstNonEmpty(social["twitter"], social["x"], "#"),
				Email:    email,
				WhatsApp: jsondoc.FirstNonEmpty(social["whatsapp"], "#"),
				Discord:  jsondoc.FirstNonEmpty(social["discord"], "#"),
			},
			Navigation: canonical.Navigation{
				Header: navItems(cfg.Get("navigation", "header"), defaultHeaderNav()),
				FooterPrimary: []canonical.NavItem{
					{ID: "projects", Label: "Projects", Href: "#projects"},
					{ID: "contact", Label: "Contact", Href: "#contact"},
				},
				FooterUtility: []canonical.NavItem{
					{ID: "backToTop", Label: "Back to top", Href: "#home"},
				},
			},
		},
		Sections: canonical.Sections{
			Hero: canonical.Hero{
				ID:          "home",
				Eyebrow:     heroSettings.Get("badge", "text").Str(heroSection.Get("eyebrow").Str("Kinetic portfolio • motion-first UI • fast")),
				Headline:    heroSection.Get("headline").Str(siteName),
				Subheadline: heroSection.Get("subheadline").Str(tagline),
				PrimaryCTA: canonical.CTA{
					Label: primaryCta.Get("label").Str("View Projects"),
					Href:  primaryCta.Get("url").Str("#projects"),
				},
				SecondaryCTA: canonical.CTA{
					Label: secondaryCta.Get("label").Str("Contact"),
					Href:  secondaryCta.Get("url").Str("#contact"),
				},
				StatusChips: statusChips(heroSettings),
				TerminalCard: canonical.TerminalCard{
					Title:      heroSettings.Get("terminalCard", "title").Str("cat ./signals.txt"),
					Hint:       heroSettings.Get("commandHint", "text").Str("Tip: press ⌘K to jump around"),
					Highlights: terminalHighlights(heroSettings),
				},
			},
			About: canonical.About{
				ID:         "about",
				Kicker:     aboutSettings.Get("eyebrow").Str(aboutSection.Get("eyebrow").Str("01 • About")),
				Headline:   aboutSettings.Get("header", "title").Str(aboutSection.Get("title").Str("About")),
				Intro:      aboutSettings.Get("header", "description").Str(aboutSection.Get("description").Str("")),
				Paragraphs: aboutParagraphs(aboutSettings, aboutSection),
				Callouts: canonical.Callouts{
					Title: aboutSettings.Get("nowBuilding", "label").Str("Now building"),
					Items: aboutSettings.Get("nowBuilding", "items").Strings(),
				},
				Principles: principles(aboutSettings.Get("principles")),
			},
			Projects: canonical.Projects{
				ID:       "projects",
				Kicker:   projectsSection.Get("eyebrow").Str("02 • Projects"),
				Headline: projectsSection.Get("title").Str("Projects"),
				Search: canonical.Search{
					Placeholder: projectsSettings.Get("search", "placeholder").Str("Search projects..."),
				},
				Filters: projectFilters(projectsSettings),
				Items:   projects,
			},
			Skills: canonical.Skills{
				ID:          "skills",
				Kicker:      skillsSection.Get("eyebrow").Str("03 • Skills"),
				Headline:    skillsSection.Get("title").Str("Skills"),
				Subheadline: skillsSection.Get("description").Str(""),
				Groups:      groupsOrDefault(groups, techChips),
				Radar: canonical.Radar{
					Title: doc.Get("skills", "radars").First().Get("title").Str("Skill signal"),
					Axes:  radarAxes(doc.Get("skills", "radars").First().Get("axes")),
					Note:  doc.Get("skills", "radars").First().Get("note").Str(""),
				},
			},
			Experience: canonical.Experience{
				ID:          "experience",
				Kicker:      experienceSection.Get("eyebrow").Str("04 • Experience"),
				Headline:    experienceSection.Get("title").Str("Experience"),
				Subheadline: experienceSection.Get("description").Str(""),
				Items:       experiences,
			},
			Contact: canonical.Contact{
				ID:           "contact",
				Kicker:       contactSettings.Get("eyebrow").Str(contactSection.Get("eyebrow").Str("05 • Contact")),
				Headline:     contactSettings.Get("title").Str(contactSection.Get("title").Str("Contact")),
				Subheadline:  contactSettings.Get("description").Str(contactSection.Get("subtitle").Str("")),
				ResponseTime: contactSettings.Get("responseTime").Str("I typically reply within 24–48 hours."),
				DirectLine: canonical.DirectLine{
					Title: contactSettings.Get("directLineCard", "title").Str("Direct line"),
					Hint:  contactSettings.Get("directLineCard", "hint").Str("Prefer email? Copy it in one click."),
					Email: contactSettings.Get("directLineCard", "email").Str(email),
					Actions: actions(contactSettings.Get("directLineCard", "actions"), []canonical.Action{
						{ID: "email", Label: "Email me", Href: "mailto:" + email},
					}),
				},
				Form: canonical.ContactForm{
					Title:           contactSettings.Get("quickMessageForm", "title").Str("Quick message"),
					Fields:          contactFormFields(contactSettings.Get("quickMessageForm", "fields")),
					PrimaryButton:   canonical.Button{Label: contactSettings.Get("quickMessageForm", "primaryButton", "label").Str("Send Message")},
					SecondaryButton: canonical.Button{Label: contactSettings.Get("quickMessageForm", "secondaryButton", "label").Str("Preview mailto link")},
					Mailto:          mailtoPreview(contactSettings.Get("quickMessageForm", "previewMailto")),
				},
			},
			Footer: canonical.Footer{
				ID: "footer",
				Bento: canonical.Bento{
					ProfileCard: canonical.ProfileCard{
						Icon:      "terminal",
						Name:      siteName,
						TitleLine: tagline + " • " + cfg.Get("location").Str("Remote"),
						Summary:   footerSettings.Get("profileCard", "summary").Str("Building fast, accessible, and reliable web applications."),
						TechChips: chipsOrDefault(techChips),
					},
					ConnectCard: canonical.ConnectCard{
						Label: "Online",
						Links: connectLinks,
					},
					StatusCard: canonical.StatusCard{
						Label:     "Local time",
						ShowClock: true,
						AvailabilityPill: canonical.Availability{
							Status: cfg.Get("availability_status").Str("AVAILABLE"),
							Note:   cfg.Get("availability_note").Str(""),
						},
					},
					CTACard: canonical.CTACard{
						Headline: footerSettings.Get("ctaCard", "headline").Str("Building fast, reliable web products"),
						Icon:     "mail",
						Links: ctaLinks(footerSettings.Get("ctaCard", "links"), []canonical.CTA{
							{Label: "Projects", Href: "#projects"},
							{Label: "Contact", Href: "#contact"},
						}),
						Version: footerSettings.Get("ctaCard", "version").Str("v.2026.01"),
					},
				},
				Credits: canonical.Credits{
					Left:   footerSection.Get("credits", "left").Str("Designed & developed by " + siteName),
					Middle: footerSection.Get("credits", "middle").Str("Built with Next.js and Laravel"),
					Right:  footerSection.Get("credits", "right").Str("© 2026 — All rights reserved"),
				},
			},
		},
	}
}

// MapV3 reuses the v2 mapping verbatim; the v3 theme differs only in
// presentation.
func MapV3(doc jsondoc.Value) canonical.Model {
	return MapV2(doc)
}

func mapV2Projects(doc jsondoc.Value) []canonical.Project {
	items := doc.Get("projects").Arr()
	out := make([]canonical.Project, 0, len(items))
	for _, p := range items {
		tags := projectTags(p)

		id := p.Get("slug").Str("")
		if id == "" {
			id = p.Get("id").Stringify("project")
		}

		year := p.Get("meta", "year").Stringify("")
		if year == "" {
			year = p.Get("year").Stringify("")
		}

		links := p.Get("links")
		href := jsondoc.FirstNonEmpty(
			links.Get("live").Str(""),
			links.Get("repo").Str(""),
			p.Get("url").Str(""),
			p.Get("link").Str(""),
			"#",
		)

		out = append(out, canonical.Project{
			ID:      id,
			Title:   p.Get("title").Str("Untitled Project"),
			Year:    year,
			Summary: jsondoc.FirstNonEmpty(p.Get("summary_json", "cardDescription").Str(""), p.Get("summary").Str(""), p.Get("description").Str("")),
			Href:    href,
			Badges:  projectBadges(p, tags),
		})
	}
	return out
}

func mapV2Experiences(doc jsondoc.Value) []canonical.ExperienceItem {
	items := doc.Get("experiences").Arr()
	out := make([]canonical.ExperienceItem, 0, len(items))
	for _, e := range items {
		tags := e.Get("tags")
		if !tags.IsArr() {
			tags = e.Get("meta", "tags")
		}

		end := e.Get("end_date").Str("")
		if e.Get("is_current").Bool() {
			end = "Present"
		}

		out = append(out, canonical.ExperienceItem{
			Title:      jsondoc.FirstNonEmpty(e.Get("role").Str(""), e.Get("title").Str(""), "Role"),
			Company:    jsondoc.FirstNonEmpty(e.Get("company").Str(""), e.Get("org").Str(""), "Company"),
			Location:   e.Get("location").Str(""),
			Start:      e.Get("start_date").Str(""),
			End:        end,
			Highlights: e.Get("bullets").Strings(),
			Tech:       tags.Strings(),
		})
	}
	return out
}

// mapV2SkillGroups prefers backend categories over section-settings groups.
func mapV2SkillGroups(doc jsondoc.Value, skillsSettings jsondoc.Value) []canonical.SkillGroup {
	backend := skillGroups(doc.Get("skills", "categories"))
	if len(backend) > 0 {
		return keepPopulatedGroups(backend)
	}
	return keepPopulatedGroups(skillGroups(skillsSettings.Get("groups")))
}

func groupsOrDefault(groups []canonical.SkillGroup, techChips []string) []canonical.SkillGroup {
	if len(groups) > 0 {
		return groups
	}
	return []canonical.SkillGroup{{Name: "Skills", Items: techChips}}
}

func chipsOrDefault(chips []string) []string {
	if len(chips) > 0 {
		return chips
	}
	return []string{"React", "TypeScript", "Next.js"}
}

func projectFilters(projectsSettings jsondoc.Value) []string {
	filters := projectsSettings.Get("filters")
	if filters.IsArr() {
		return filters.Strings()
	}
	return []string{"All", "Open Source", "Performance", "UI", "Misc"}
}

func statusChips(heroSettings jsondoc.Value) []canonical.StatusChip {
	raw := heroSettings.Get("statusChips").Arr()
	if len(raw) > 0 {
		out := make([]canonical.StatusChip, 0, len(raw))
		for _, chip := range raw {
			out = append(out, canonical.StatusChip{Label: chip.Get("label").Str("")})
		}
		return out
	}
	if subtext := heroSettings.Get("badge", "subtext").Str(""); subtext != "" {
		return []canonical.StatusChip{{Label: subtext}}
	}
	return []canonical.StatusChip{}
}

// terminalHighlights prefers configured feature cards and falls back to the
// two info panels with literal demo copy.
func terminalHighlights(heroSettings jsondoc.Value) []canonical.Highlight {
	cards := heroSettings.Get("featureCards").Arr()
	if len(cards) > 0 {
		out := make([]canonical.Highlight, 0, len(cards))
		for _, c := range cards {
			h := canonical.Highlight{Label: c.Get("label").Str(""), Text: c.Get("value").Str("")}
			if h.Label != "" || h.Text != "" {
				out = append(out, h)
			}
		}
		return out
	}

	panels := heroSettings.Get("infoPanels")
	return []canonical.Highlight{
		{
			Label: panels.Index(0).Get("title").Str("Open"),
			Text:  panels.Index(0).Get("body").Str("Open to freelance, contract, or full-time roles where craft matters."),
		},
		{
			Label: panels.Index(1).Get("title").Str("Shipping"),
			Text:  panels.Index(1).Get("body").Str("I love building end-to-end: crisp UI, robust data models, and production-ready deployments."),
		},
	}
}

// aboutParagraphs tries the three historical locations for about copy in
// order, keeping the first that yields anything.
func aboutParagraphs(aboutSettings, aboutSection jsondoc.Value) []string {
	for _, candidate := range []jsondoc.Value{
		aboutSettings.Get("content", "paragraphs"),
		aboutSettings.Get("content"),
		aboutSection.Get("content"),
	} {
		if paragraphs := candidate.Paragraphs(); len(paragraphs) > 0 {
			return paragraphs
		}
	}
	return []string{}
}

func contactFormFields(raw jsondoc.Value) []canonical.FormField {
	if raw.IsArr() {
		return formFields(raw, "name", "key")
	}
	return DefaultFormFields()
}

// DefaultFormFields is the fallback contact form schema.
func DefaultFormFields() []canonical.FormField {
	return []canonical.FormField{
		{Name: "name", Label: "Your name", Placeholder: "Jane Doe", Type: "text", Required: true},
		{Name: "email", Label: "Your email", Placeholder: "jane@company.com", Type: "email", Required: true},
		{Name: "subject", Label: "Subject", Placeholder: "Let's talk about...", Type: "text", Required: true},
		{Name: "message", Label: "Message", Placeholder: "Tell me what you're building…", Type: "textarea", Required: true},
	}
}
