package mapper

import (
	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/jsondoc"
)

// MapV1 is the original theme's own mapping. It predates the shared mapper
// and keeps its historical defaults (lowercase CTA copy, the command-menu
// hint, the ready_to_collab info panels), so the two are intentionally not
// unified.
func MapV1(doc jsondoc.Value) canonical.Model {
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
	contactSettings := contactSection.Get("settings")

	ctas := heroSection.Get("ctas")
	primaryCta := jsondoc.Coalesce(heroSettings.Get("cta", "primary"), ctas.Index(0))
	secondaryCta := jsondoc.Coalesce(heroSettings.Get("cta", "secondary"), ctas.Index(1))

	social := socialMap(doc, footerSection)
	email := jsondoc.FirstNonEmpty(cfg.Get("email").Str(""), social["email"], "you@example.com")
	github := jsondoc.FirstNonEmpty(cfg.Get("github_url").Str(""), social["github"], "#")
	linkedin := jsondoc.FirstNonEmpty(cfg.Get("linkedin_url").Str(""), social["linkedin"], "#")

	siteName := cfg.Get("site_name").Str("Your Name")
	role := cfg.Get("tagline").Str("Developer")
	location := heroSettings.Get("meta", "location").Str("Remote")

	groups := keepPopulatedGroups(skillGroups(doc.Get("skills", "categories")))

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
				Role:     role,
				Location: location,
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
				Header:        navItems(cfg.Get("navigation", "header"), defaultHeaderNav()),
				FooterPrimary: []canonical.NavItem{},
				FooterUtility: []canonical.NavItem{},
			},
		},
		Sections: canonical.Sections{
			Hero: canonical.Hero{
				ID:          "home",
				Eyebrow:     heroSettings.Get("badge", "text").Str("Kinetic portfolio • motion-first UI • fast"),
				Headline:    heroSection.Get("headline").Str(""),
				Subheadline: heroSection.Get("subheadline").Str(""),
				PrimaryCTA: canonical.CTA{
					Label: primaryCta.Get("label").Str("View projects"),
					Href:  primaryCta.Get("url").Str("#projects"),
				},
				SecondaryCTA: canonical.CTA{
					Label: secondaryCta.Get("label").Str("Contact"),
					Href:  secondaryCta.Get("url").Str("#contact"),
				},
				StatusChips: statusChips(heroSettings),
				TerminalCard: canonical.TerminalCard{
					Title:      heroSettings.Get("terminalCard", "title").Str("cat ./signals.txt"),
					Hint:       heroSettings.Get("commandHint", "text").Str("Press ⌘K for the command menu"),
					Highlights: v1InfoPanels(heroSettings),
				},
			},
			About: canonical.About{
				ID:         "about",
				Kicker:     aboutSettings.Get("eyebrow").Str("01 • About"),
				Headline:   aboutSettings.Get("header", "title").Str(aboutSection.Get("title").Str("About")),
				Intro:      aboutSettings.Get("header", "description").Str(""),
				Paragraphs: aboutSettings.Get("content", "paragraphs").Strings(),
				Callouts: canonical.Callouts{
					Title: aboutSettings.Get("nowBuilding", "label").Str("Now building"),
					Items: aboutSettings.Get("nowBuilding", "items").Strings(),
				},
				Principles: principles(aboutSettings.Get("principles")),
			},
			Projects: canonical.Projects{
				ID:       "projects",
				Kicker:   projectsSection.Get("eyebrow").Str("02 • Projects"),
				Headline: projectsSection.Get("title").Str("Selected work, built end-to-end."),
				Search: canonical.Search{
					Placeholder: "Search projects...",
				},
				Filters: []string{},
				Items:   mapV1Projects(doc),
			},
			Skills: canonical.Skills{
				ID:          "skills",
				Kicker:      skillsSection.Get("eyebrow").Str(""),
				Headline:    skillsSection.Get("title").Str(""),
				Subheadline: skillsSection.Get("description").Str(""),
				Groups:      groups,
				Radar: canonical.Radar{
					Title: doc.Get("skills", "radars").First().Get("title").Str(""),
					Axes:  radarAxes(doc.Get("skills", "radars").First().Get("axes")),
					Note:  doc.Get("skills", "radars").First().Get("note").Str(""),
				},
			},
			Experience: canonical.Experience{
				ID:          "experience",
				Kicker:      experienceSection.Get("eyebrow").Str("04 • Experience"),
				Headline:    experienceSection.Get("title").Str("Experience"),
				Subheadline: experienceSection.Get("description").Str(""),
				Items:       mapV1Experiences(doc),
			},
			Contact: canonical.Contact{
				ID:           contactSettings.Get("id").Str("contact"),
				Kicker:       contactSettings.Get("eyebrow").Str("05 • Contact"),
				Headline:     contactSettings.Get("title").Str(contactSection.Get("title").Str("Contact")),
				Subheadline:  contactSettings.Get("description").Str(contactSection.Get("subtitle").Str("")),
				ResponseTime: contactSettings.Get("responseTime").Str(""),
				DirectLine: canonical.DirectLine{
					Title:   contactSettings.Get("directLineCard", "title").Str("Direct line"),
					Hint:    contactSettings.Get("directLineCard", "subtitle").Str(""),
					Email:   jsondoc.FirstNonEmpty(contactSettings.Get("directLineCard", "emailBlock", "value").Str(""), email),
					Actions: actions(contactSettings.Get("directLineCard", "secondaryActions"), []canonical.Action{}),
				},
				Form: canonical.ContactForm{
					Title:           contactSettings.Get("quickMessageForm", "title").Str("Quick message"),
					Fields:          v1FormFields(contactSettings.Get("quickMessageForm", "fields")),
					PrimaryButton:   canonical.Button{Label: contactSettings.Get("quickMessageForm", "submit", "label").Str("Send Message")},
					SecondaryButton: canonical.Button{Label: contactSettings.Get("quickMessageForm", "previewMailto", "label").Str("Preview mailto link")},
					Mailto:          mailtoPreview(contactSettings.Get("quickMessageForm", "previewMailto")),
				},
			},
			Footer: canonical.Footer{
				ID: "footer",
				Bento: canonical.Bento{
					ProfileCard: canonical.ProfileCard{
						Icon:      "terminal",
						Name:      siteName,
						TitleLine: role + " • " + location,
						Summary:   footerSection.Get("subtitle").Str(""),
						TechChips: firstSixItems(groups),
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
						Headline: footerSection.Get("title").Str(""),
						Icon:     "mail",
						Links:    []canonical.CTA{},
						Version:  "",
					},
				},
				Credits: canonical.Credits{
					Left:   footerSection.Get("credits", "left").Str("Designed & developed by " + siteName),
					Middle: footerSection.Get("credits", "middle").Str(""),
					Right:  footerSection.Get("credits", "right").Str(""),
				},
			},
		},
	}
}

// v1InfoPanels keeps the original theme's two-panel fallback copy.
func v1InfoPanels(heroSettings jsondoc.Value) []canonical.Highlight {
	cards := heroSettings.Get("featureCards").Arr()
	if len(cards) > 0 {
		out := make([]canonical.Highlight, 0, len(cards))
		for _, c := range cards {
			out = append(out, canonical.Highlight{
				Label: c.Get("label").Str(""),
				Text:  c.Get("value").Str(""),
			})
		}
		return out
	}

	panels := heroSettings.Get("infoPanels")
	return []canonical.Highlight{
		{
			Label: panels.Index(0).Get("title").Str("ready_to_collab()"),
			Text:  panels.Index(0).Get("body").Str("Open to freelance, contract, or full-time roles where craft matters."),
		},
		{
			Label: panels.Index(1).Get("title").Str("shipping"),
			Text:  panels.Index(1).Get("body").Str("I love building end-to-end: crisp UI, robust data models, and production-ready deployments."),
		},
	}
}

// v1FormFields reads the historical "key" field name before "name".
func v1FormFields(raw jsondoc.Value) []canonical.FormField {
	if raw.IsArr() {
		return formFields(raw, "key", "name")
	}
	return DefaultFormFields()
}

func mapV1Projects(doc jsondoc.Value) []canonical.Project {
	items := doc.Get("projects").Arr()
	out := make([]canonical.Project, 0, len(items))
	for _, p := range items {
		tags := projectTags(p)

		stack := p.Get("stack")
		if !stack.IsArr() {
			stack = p.Get("tech_stack")
		}
		badges := stack.Strings()
		if len(badges) == 0 {
			badges = tags.Strings()
		}

		id := p.Get("slug").Str("")
		if id == "" {
			id = p.Get("id").Stringify("project")
		}

		links := p.Get("links")
		out = append(out, canonical.Project{
			ID:      id,
			Title:   p.Get("title").Str(""),
			Year:    p.Get("meta", "year").Stringify(""),
			Summary: jsondoc.FirstNonEmpty(p.Get("summary_json", "cardDescription").Str(""), p.Get("summary").Str("")),
			Href:    jsondoc.FirstNonEmpty(links.Get("live").Str(""), links.Get("repo").Str(""), "#"),
			Badges:  badges,
		})
	}
	return out
}

func mapV1Experiences(doc jsondoc.Value) []canonical.ExperienceItem {
	items := doc.Get("experiences").Arr()
	out := make([]canonical.ExperienceItem, 0, len(items))
	for _, e := range items {
		tags := e.Get("tags")
		if !tags.IsArr() {
			tags = e.Get("meta", "tags")
		}

		// The original theme prefers a recorded end date over the
		// is_current flag, unlike the shared mapper.
		end := e.Get("end_date").Str("")
		if end == "" && e.Get("is_current").Bool() {
			end = "Present"
		}

		out = append(out, canonical.ExperienceItem{
			Title:      jsondoc.FirstNonEmpty(e.Get("title").Str(""), e.Get("role").Str("")),
			Company:    jsondoc.FirstNonEmpty(e.Get("org").Str(""), e.Get("company").Str("")),
			Location:   e.Get("location").Str(""),
			Start:      e.Get("start_date").Str(""),
			End:        end,
			Highlights: e.Get("bullets").Strings(),
			Tech:       tags.Strings(),
		})
	}
	return out
}
