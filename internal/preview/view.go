package preview

import (
	"fmt"
	"strings"
)

// View renders the current preview frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("folio preview"))
	b.WriteString("  ")
	label := string(m.key)
	if m.forced {
		label += " (forced)"
	}
	b.WriteString(themeStyle.Render("theme: " + label))
	if m.loading {
		b.WriteString("  " + m.spinner.View() + mutedStyle.Render(" fetching…"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(mutedStyle.Render("waiting for content…"))
	} else {
		b.WriteString(m.renderSection())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/←→ sections · r refresh · 1-4 force theme · 0 auto · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(sectionNames))
	for i, name := range sectionNames {
		if i == m.section {
			tabs[i] = tabActive.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return strings.Join(tabs, "  ")
}

func (m Model) renderSection() string {
	switch sectionNames[m.section] {
	case "hero":
		return m.renderHero()
	case "about":
		return m.renderAbout()
	case "projects":
		return m.renderProjects()
	case "skills":
		return m.renderSkills()
	case "experience":
		return m.renderExperience()
	case "contact":
		return m.renderContact()
	default:
		return m.renderFooter()
	}
}

func (m Model) renderHero() string {
	hero := m.model.Sections.Hero
	var b strings.Builder
	if hero.Eyebrow != "" {
		b.WriteString(kickerStyle.Render(hero.Eyebrow) + "\n")
	}
	b.WriteString(headingStyle.Render(hero.Headline) + "\n")
	b.WriteString(hero.Subheadline + "\n\n")
	b.WriteString(fmt.Sprintf("[%s] → %s\n", hero.PrimaryCTA.Label, hero.PrimaryCTA.Href))
	if hero.SecondaryCTA.Label != "" {
		b.WriteString(fmt.Sprintf("[%s] → %s\n", hero.SecondaryCTA.Label, hero.SecondaryCTA.Href))
	}
	for _, chip := range hero.StatusChips {
		b.WriteString(chipStyle.Render("• "+chip.Label) + "\n")
	}
	if len(hero.TerminalCard.Highlights) > 0 {
		b.WriteString("\n" + mutedStyle.Render(hero.TerminalCard.Title) + "\n")
		for _, h := range hero.TerminalCard.Highlights {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", h.Label, h.Text))
		}
	}
	return b.String()
}

func (m Model) renderAbout() string {
	about := m.model.Sections.About
	var b strings.Builder
	b.WriteString(kickerStyle.Render(about.Kicker) + "\n")
	b.WriteString(headingStyle.Render(about.Headline) + "\n\n")
	for _, p := range about.Paragraphs {
		b.WriteString(wrap(p, m.width) + "\n\n")
	}
	for _, pr := range about.Principles {
		b.WriteString(chipStyle.Render(pr.Title) + " " + mutedStyle.Render(pr.Description) + "\n")
	}
	return b.String()
}

func (m Model) renderProjects() string {
	projects := m.model.Sections.Projects
	var b strings.Builder
	b.WriteString(kickerStyle.Render(projects.Kicker) + "\n")
	b.WriteString(headingStyle.Render(projects.Headline) + "\n\n")
	for _, p := range projects.Items {
		line := p.Title
		if p.Year != "" {
			line += " (" + p.Year + ")"
		}
		b.WriteString(headingStyle.Render(line) + "\n")
		if p.Summary != "" {
			b.WriteString("  " + wrap(p.Summary, m.width-2) + "\n")
		}
		if len(p.Badges) > 0 {
			b.WriteString("  " + chipStyle.Render(strings.Join(p.Badges, " · ")) + "\n")
		}
		b.WriteString("  " + mutedStyle.Render(p.Href) + "\n\n")
	}
	return b.String()
}

func (m Model) renderSkills() string {
	skills := m.model.Sections.Skills
	var b strings.Builder
	b.WriteString(kickerStyle.Render(skills.Kicker) + "\n")
	b.WriteString(headingStyle.Render(skills.Headline) + "\n\n")
	for _, g := range skills.Groups {
		b.WriteString(chipStyle.Render(g.Name) + ": " + strings.Join(g.Items, ", ") + "\n")
	}
	if len(skills.Radar.Axes) > 0 {
		b.WriteString("\n" + mutedStyle.Render(skills.Radar.Title) + "\n")
		for _, axis := range skills.Radar.Axes {
			b.WriteString(fmt.Sprintf("  %-14s %s\n", axis.Label, bar(axis.Value)))
		}
	}
	return b.String()
}

func (m Model) renderExperience() string {
	exp := m.model.Sections.Experience
	var b strings.Builder
	b.WriteString(kickerStyle.Render(exp.Kicker) + "\n")
	b.WriteString(headingStyle.Render(exp.Headline) + "\n\n")
	for _, item := range exp.Items {
		b.WriteString(headingStyle.Render(item.Title) + mutedStyle.Render(" @ "+item.Company) + "\n")
		b.WriteString("  " + mutedStyle.Render(item.Start+" — "+item.End) + "\n")
		for _, h := range item.Highlights {
			b.WriteString("  - " + wrap(h, m.width-4) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderContact() string {
	contact := m.model.Sections.Contact
	var b strings.Builder
	b.WriteString(kickerStyle.Render(contact.Kicker) + "\n")
	b.WriteString(headingStyle.Render(contact.Headline) + "\n")
	b.WriteString(contact.Subheadline + "\n\n")
	b.WriteString("email: " + chipStyle.Render(contact.DirectLine.Email) + "\n")
	b.WriteString(mutedStyle.Render(contact.ResponseTime) + "\n\n")
	b.WriteString(mutedStyle.Render("form fields:") + "\n")
	for _, f := range contact.Form.Fields {
		req := ""
		if f.Required {
			req = " *"
		}
		b.WriteString(fmt.Sprintf("  %s (%s)%s\n", f.Label, f.Type, req))
	}
	return b.String()
}

func (m Model) renderFooter() string {
	footer := m.model.Sections.Footer
	var b strings.Builder
	bento := footer.Bento
	b.WriteString(headingStyle.Render(bento.ProfileCard.Name) + " " + mutedStyle.Render(bento.ProfileCard.TitleLine) + "\n")
	if len(bento.ProfileCard.TechChips) > 0 {
		b.WriteString(chipStyle.Render(strings.Join(bento.ProfileCard.TechChips, " · ")) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render(bento.ConnectCard.Label) + "\n")
	for _, link := range bento.ConnectCard.Links {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", link.Platform, link.Href))
	}
	b.WriteString("\n" + footer.Credits.Left + "\n")
	b.WriteString(mutedStyle.Render(footer.Credits.Middle) + "\n")
	b.WriteString(mutedStyle.Render(footer.Credits.Right) + "\n")
	return b.String()
}

// bar draws a 0-100 value as a ten-cell gauge.
func bar(value float64) string {
	filled := int(value / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// wrap soft-wraps text to the given width, leaving short lines alone.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	var lines []string
	var cur string
	for _, word := range words {
		if cur == "" {
			cur = word
			continue
		}
		if len(cur)+1+len(word) > width {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur += " " + word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}
