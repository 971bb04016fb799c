package mapper

import (
	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/jsondoc"
)

// MapV4 is an independent mapping for the v4 theme, structurally parallel to
// the shared mapper but with its own source-field precedences: bare social
// keys on siteConfig, an availability object instead of flat fields, and an
// object-shaped socialLinks fallback.
func MapV4(doc jsondoc.Value) canonical.Model {
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

	siteName := cfg.Get("site_name").Str("Your Name")

	return canonical.Model{
		Site: canonical.Site{
			Meta: canonical.Meta{
				Title:       cfg.Get("site_name").Str("My Portfolio"),
				Description: cfg.Get("tagline").Str(""),
				Language:    cfg.Get("language").Str("en"),
			},
			Branding: canonical.Branding{
				Name:     siteName,
				Handle:   cfg.Get("handle").Str(cfg.Get("site_name").Str("Portfolio")),
				Role:     cfg.Get("tagline").Str("Developer"),
				Location: heroSettings.Get("meta", "location").Str(cfg.Get("location").Str("Remote")),
				Availability: canonical.Availability{
					Status: cfg.Get("availability", "status").Str("AVAILABLE"),
					Note:   cfg.Get("availability", "note").Str(""),
				},
			},
			Social: canonical.Social{
				GitHub:   jsondoc.FirstNonEmpty(cfg.Get("github").Str(""), doc.Get("socialLinks", "github").Str(""), "#"),
				LinkedIn: jsondoc.FirstNonEmpty(cfg.Get("linkedin").Str(""), doc.Get("socialLinks", "linkedin").Str(""), "#"),
				Twitter:  jsondoc.FirstNonEmpty(cfg.Get("twitter").Str(""), doc.Get("socialLinks", "twitter").Str(""), "#"),
				Email:    jsondoc.FirstNonEmpty(cfg.Get("email").Str(""), doc.Get("socialLinks", "email").Str(""), "email@example.com"),
				WhatsApp: jsondoc.FirstNonEmpty(cfg.Get("whatsapp").Str(""), "#"),
				Discord:  jsondoc.FirstNonEmpty(cfg.Get("discord").Str(""), "#"),
			},
			Navigation: canonical.Navigation{
				Header:        v4NavItems(cfg.Get("navigation", "header"), defaultHeaderNav()),
				FooterPrimary: v4NavItems(cfg.Get("navigation", "footerPrimary"), []canonical.NavItem{}),
				FooterUtility: v4NavItems(cfg.Get("navigation", "footerUtility"), []canonical.NavItem{}),
			},
		},
		Sections: canonical.Sections{
			Hero:       mapV4Hero(heroSection, heroSettings),
			About:      mapV4About(aboutSection, aboutSettings),
			Projects:   mapV4Projects(doc, projectsSection),
			Skills:     mapV4Skills(doc, skillsSection),
			Experience: mapV4Experience(doc, experienceSection),
			Contact:    mapV4Contact(cfg, contactSection),
			Footer:     mapV4Footer(cfg, footerSection),
		},
	}
}

// v4NavItems substitutes defaults only when the list is absent, not when it
// is empty.
func v4NavItems(raw jsondoc.Value, defaults []canonical.NavItem) []canonical.NavItem {
	if !raw.IsArr() {
		return defaults
	}
	items := raw.Arr()
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

func mapV4Hero(heroSection, heroSettings jsondoc.Value) canonical.Hero {
	primary := canonical.CTA{Label: "View Projects", Href: "#projects"}
	if heroSettings.Get("cta", "primary").Exists() {
		primary = canonical.CTA{
			Label: heroSettings.Get("cta", "primary", "label").Str("View projects"),
			Href:  heroSettings.Get("cta", "primary", "url").Str("#projects"),
		}
	}
	secondary := canonical.CTA{Label: "Contact", Href: "#contact"}
	if heroSettings.Get("cta", "secondary").Exists() {
		secondary = canonical.CTA{
			Label: heroSettings.Get("cta", "secondary", "label").Str("Contact"),
			Href:  heroSettings.Get("cta", "secondary", "url").Str("#contact"),
		}
	}

	terminal := jsondoc.Coalesce(heroSettings.Get("terminalCard"), heroSettings.Get("terminal"))

	return canonical.Hero{
		ID:           heroSettings.Get("id").Str("home"),
		Eyebrow:      heroSettings.Get("badge", "text").Str(heroSection.Get("eyebrow").Str("")),
		Headline:     heroSection.Get("headline").Str(""),
		Subheadline:  heroSection.Get("subheadline").Str(""),
		PrimaryCTA:   primary,
		SecondaryCTA: secondary,
		StatusChips:  []canonical.StatusChip{},
		TerminalCard: canonical.TerminalCard{
			Title:      terminal.Get("title").Str(""),
			Hint:       terminal.Get("hint").Str(""),
			Highlights: v4TerminalHighlights(terminal.Get("highlights")),
		},
	}
}

func v4TerminalHighlights(raw jsondoc.Value) []canonical.Highlight {
	items := raw.Arr()
	out := make([]canonical.Highlight, 0, len(items))
	for _, h := range items {
		out = append(out, canonical.Highlight{
			Label: h.Get("label").Str(""),
			Text:  jsondoc.FirstNonEmpty(h.Get("text").Str(""), h.Get("value").Str("")),
		})
	}
	return out
}

func mapV4About(aboutSection, aboutSettings jsondoc.Value) canonical.About {
	return canonical.About{
		ID:         aboutSettings.Get("id").Str("about"),
		Kicker:     jsondoc.FirstNonEmpty(aboutSection.Get("eyebrow").Str(""), aboutSettings.Get("eyebrow").Str(""), "01 • About"),
		Headline:   aboutSection.Get("title").Str("About"),
		Intro:      jsondoc.FirstNonEmpty(aboutSection.Get("subtitle").Str(""), aboutSettings.Get("header", "description").Str("")),
		Paragraphs: aboutSettings.Get("content", "paragraphs").Strings(),
		Callouts: canonical.Callouts{
			Title: aboutSettings.Get("nowBuilding", "label").Str("Now building"),
			Items: aboutSettings.Get("nowBuilding", "items").Strings(),
		},
		Principles: principles(aboutSettings.Get("principles")),
	}
}

func mapV4Projects(doc jsondoc.Value, projectsSection jsondoc.Value) canonical.Projects {
	raw := doc.Get("projects").Arr()
	items := make([]canonical.Project, 0, len(raw))
	for _, p := range raw {
		id := p.Get("slug").Str("")
		if id == "" {
			id = p.Get("id").Stringify("")
		}

		year := p.Get("meta", "year").Stringify("")
		if year == "" {
			year = p.Get("year").Stringify("")
		}

		badges := p.Get("stack")
		if !badges.IsArr() {
			badges = p.Get("tech_stack")
		}

		items = append(items, canonical.Project{
			ID:      id,
			Title:   p.Get("title").Str(""),
			Year:    year,
			Summary: jsondoc.FirstNonEmpty(p.Get("summary_json", "cardDescription").Str(""), p.Get("summary").Str("")),
			Href:    jsondoc.FirstNonEmpty(p.Get("links", "live").Str(""), p.Get("links", "url").Str(""), "#"),
			Badges:  badges.Strings(),
		})
	}

	filters := projectsSection.Get("settings", "filters")
	filterList := []string{"All"}
	if filters.IsArr() {
		filterList = filters.Strings()
	}

	return canonical.Projects{
		ID:       projectsSection.Get("settings", "id").Str("projects"),
		Kicker:   projectsSection.Get("eyebrow").Str("02 • Projects"),
		Headline: projectsSection.Get("title").Str("Projects"),
		Search:   canonical.Search{Placeholder: ""},
		Filters:  filterList,
		Items:    items,
	}
}

func mapV4Skills(doc jsondoc.Value, skillsSection jsondoc.Value) canonical.Skills {
	radar := doc.Get("skills", "radars").First()
	return canonical.Skills{
		ID:          skillsSection.Get("settings", "id").Str("skills"),
		Kicker:      skillsSection.Get("eyebrow").Str("03 • Skills"),
		Headline:    skillsSection.Get("title").Str("Skills"),
		Subheadline: skillsSection.Get("description").Str(""),
		Groups:      skillGroupsLoose(doc.Get("skills", "categories")),
		Radar: canonical.Radar{
			Title: radar.Get("title").Str(""),
			Axes:  radarAxes(radar.Get("axes")),
			Note:  radar.Get("note").Str(""),
		},
	}
}

// skillGroupsLoose keeps every category as-is, without the shared mapper's
// "Skills" name default or populated-group filtering.
func skillGroupsLoose(raw jsondoc.Value) []canonical.SkillGroup {
	items := raw.Arr()
	out := make([]canonical.SkillGroup, 0, len(items))
	for _, c := range items {
		itemsField := c.Get("items")
		if !itemsField.IsArr() {
			itemsField = c.Get("skills")
		}
		out = append(out, canonical.SkillGroup{
			Name:  c.Get("name").Str(""),
			Items: itemsField.Strings(),
		})
	}
	return out
}

func mapV4Experience(doc jsondoc.Value, experienceSection jsondoc.Value) canonical.Experience {
	raw := doc.Get("experiences").Arr()
	items := make([]canonical.ExperienceItem, 0, len(raw))
	for _, e := range raw {
		tags := e.Get("tags")
		if !tags.IsArr() {
			tags = e.Get("meta", "tags")
		}

		end := e.Get("end_date").Str("")
		if e.Get("is_current").Bool() {
			end = "Present"
		}

		items = append(items, canonical.ExperienceItem{
			Title:      jsondoc.FirstNonEmpty(e.Get("role").Str(""), e.Get("title").Str("")),
			Company:    e.Get("company").Str(""),
			Location:   e.Get("location").Str(""),
			Start:      e.Get("start_date").Str(""),
			End:        end,
			Highlights: e.Get("bullets").Strings(),
			Tech:       tags.Strings(),
		})
	}

	return canonical.Experience{
		ID:          experienceSection.Get("settings", "id").Str("experience"),
		Kicker:      experienceSection.Get("eyebrow").Str("04 • Experience"),
		Headline:    experienceSection.Get("title").Str("Experience"),
		Subheadline: experienceSection.Get("description").Str(""),
		Items:       items,
	}
}

func mapV4Contact(cfg jsondoc.Value, contactSection jsondoc.Value) canonical.Contact {
	settings := contactSection.Get("settings")
	form := jsondoc.Coalesce(settings.Get("quickMessageForm"), settings.Get("form"))

	fields := []canonical.FormField{}
	if form.Get("fields").IsArr() {
		fields = formFields(form.Get("fields"), "name", "key")
	}

	return canonical.Contact{
		ID:           settings.Get("id").Str("contact"),
		Kicker:       contactSection.Get("eyebrow").Str("05 • Contact"),
		Headline:     contactSection.Get("title").Str("Contact"),
		Subheadline:  jsondoc.FirstNonEmpty(contactSection.Get("subtitle").Str(""), settings.Get("description").Str("")),
		ResponseTime: "",
		DirectLine: canonical.DirectLine{
			Title:   settings.Get("directLineCard", "title").Str("Direct line"),
			Hint:    settings.Get("directLineCard", "hint").Str(""),
			Email:   cfg.Get("email").Str("email@example.com"),
			Actions: actions(settings.Get("directLineCard", "actions"), []canonical.Action{}),
		},
		Form: canonical.ContactForm{
			Title:           form.Get("title").Str(""),
			Fields:          fields,
			PrimaryButton:   canonical.Button{Label: form.Get("primaryButton", "label").Str("Send Message")},
			SecondaryButton: canonical.Button{Label: form.Get("secondaryButton", "label").Str("")},
			Mailto:          mailtoPreview(form.Get("previewMailto")),
		},
	}
}

func mapV4Footer(cfg jsondoc.Value, footerSection jsondoc.Value) canonical.Footer {
	settings := footerSection.Get("settings")
	if !settings.Exists() {
		return canonical.Footer{
			ID: "footer",
			Bento: canonical.Bento{
				ProfileCard: canonical.ProfileCard{
					Name:      cfg.Get("site_name").Str("Your Name"),
					TitleLine: cfg.Get("tagline").Str(""),
					Summary:   footerSection.Get("subtitle").Str(""),
					TechChips: []string{},
				},
				ConnectCard: canonical.ConnectCard{Label: "Online", Links: []canonical.ConnectLink{}},
				StatusCard: canonical.StatusCard{
					Label:            "Local time",
					ShowClock:        true,
					AvailabilityPill: canonical.Availability{Status: "AVAILABLE", Note: ""},
				},
				CTACard: canonical.CTACard{Headline: "Let’s build", Icon: "mail", Links: []canonical.CTA{}, Version: ""},
			},
			Credits: canonical.Credits{},
		}
	}

	bento := settings.Get("bento")
	connect := []canonical.ConnectLink{}
	for _, link := range bento.Get("connectCard", "links").Arr() {
		connect = append(connect, canonical.ConnectLink{
			Platform: link.Get("platform").Str(""),
			Key:      link.Get("key").Str(""),
			Href:     link.Get("href").Str(""),
		})
	}

	return canonical.Footer{
		ID: settings.Get("id").Str("footer"),
		Bento: canonical.Bento{
			ProfileCard: canonical.ProfileCard{
				Icon:      bento.Get("profileCard", "icon").Str(""),
				Name:      bento.Get("profileCard", "name").Str(cfg.Get("site_name").Str("Your Name")),
				TitleLine: bento.Get("profileCard", "titleLine").Str(""),
				Summary:   bento.Get("profileCard", "summary").Str(""),
				TechChips: bento.Get("profileCard", "techChips").Strings(),
			},
			ConnectCard: canonical.ConnectCard{
				Label: bento.Get("connectCard", "label").Str("Online"),
				Links: connect,
			},
			StatusCard: canonical.StatusCard{
				Label:     bento.Get("statusCard", "label").Str("Local time"),
				ShowClock: true,
				AvailabilityPill: canonical.Availability{
					Status: bento.Get("statusCard", "availabilityPill", "status").Str("AVAILABLE"),
					Note:   bento.Get("statusCard", "availabilityPill", "note").Str(""),
				},
			},
			CTACard: canonical.CTACard{
				Headline: bento.Get("ctaCard", "headline").Str(""),
				Icon:     bento.Get("ctaCard", "icon").Str("mail"),
				Links:    ctaLinks(bento.Get("ctaCard", "links"), []canonical.CTA{}),
				Version:  bento.Get("ctaCard", "version").Str(""),
			},
		},
		Credits: canonical.Credits{
			Left:   settings.Get("credits", "left").Str(""),
			Middle: settings.Get("credits", "middle").Str(""),
			Right:  settings.Get("credits", "right").Str(""),
		},
	}
}
