// Package canonical defines the fully-defaulted content model the renderers
// consume. After mapping, every field holds a type-correct value and every
// slice is non-nil; renderers never need presence checks.
package canonical

// Model is the root of the normalized site content.
type Model struct {
	Site     Site     `json:"site"`
	Sections Sections `json:"sections"`
}

// Site carries identity, social links, and navigation.
type Site struct {
	Meta       Meta       `json:"meta"`
	Branding   Branding   `json:"branding"`
	Social     Social     `json:"social"`
	Navigation Navigation `json:"navigation"`
}

type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
}

type Branding struct {
	Name         string       `json:"name"`
	Handle       string       `json:"handle"`
	Role         string       `json:"role"`
	Location     string       `json:"location"`
	Availability Availability `json:"availability"`
}

type Availability struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// Social URLs always resolve to some string — "#" or a mailto link — so link
// rendering never needs null checks downstream.
type Social struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Discord  string `json:"discord"`
}

type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Navigation struct {
	Header        []NavItem `json:"header"`
	FooterPrimary []NavItem `json:"footerPrimary"`
	FooterUtility []NavItem `json:"footerUtility"`
}

// Sections holds one sub-object per logical content block.
type Sections struct {
	Hero       Hero       `json:"hero"`
	About      About      `json:"about"`
	Projects   Projects   `json:"projects"`
	Skills     Skills     `json:"skills"`
	Experience Experience `json:"experience"`
	Contact    Contact    `json:"contact"`
	Footer     Footer     `json:"footer"`
}

type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Highlight struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type TerminalCard struct {
	Title      string      `json:"title"`
	Hint       string      `json:"hint"`
	Highlights []Highlight `json:"highlights"`
}

type StatusChip struct {
	Label string `json:"label"`
}

type Hero struct {
	ID           string       `json:"id"`
	Eyebrow      string       `json:"eyebrow"`
	Headline     string       `json:"headline"`
	Subheadline  string       `json:"subheadline"`
	PrimaryCTA   CTA          `json:"primaryCta"`
	SecondaryCTA CTA          `json:"secondaryCta"`
	StatusChips  []StatusChip `json:"statusChips"`
	TerminalCard TerminalCard `json:"terminalCard"`
}

type Principle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Callouts struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type About struct {
	ID         string      `json:"id"`
	Kicker     string      `json:"kicker"`
	Headline   string      `json:"headline"`
	Intro      string      `json:"intro"`
	Paragraphs []string    `json:"paragraphs"`
	Callouts   Callouts    `json:"callouts"`
	Principles []Principle `json:"principles"`
}

type Project struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Year    string   `json:"year"`
	Summary string   `json:"summary"`
	Href    string   `json:"href"`
	Badges  []string `json:"badges"`
}

type Search struct {
	Placeholder string `json:"placeholder"`
}

type Projects struct {
	ID       string    `json:"id"`
	Kicker   string    `json:"kicker"`
	Headline string    `json:"headline"`
	Search   Search    `json:"search"`
	Filters  []string  `json:"filters"`
	Items    []Project `json:"items"`
}

type SkillGroup struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type RadarAxis struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Radar struct {
	Title string      `json:"title"`
	Axes  []RadarAxis `json:"axes"`
	Note  string      `json:"note"`
}

type Skills struct {
	ID          string       `json:"id"`
	Kicker      string       `json:"kicker"`
	Headline    string       `json:"headline"`
	Subheadline string       `json:"subheadline"`
	Groups      []SkillGroup `json:"groups"`
	Radar       Radar        `json:"radar"`
}

type ExperienceItem struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Highlights []string `json:"highlights"`
	Tech       []string `json:"tech"`
}

type Experience struct {
	ID          string           `json:"id"`
	Kicker      string           `json:"kicker"`
	Headline    string           `json:"headline"`
	Subheadline string           `json:"subheadline"`
	Items       []ExperienceItem `json:"items"`
}

type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

type DirectLine struct {
	Title   string   `json:"title"`
	Hint    string   `json:"hint"`
	Email   string   `json:"email"`
	Actions []Action `json:"actions"`
}

type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	MinLength   int    `json:"minLength,omitempty"`
}

type Button struct {
	Label string `json:"label"`
}

// MailtoPreview configures the optional "preview mailto link" feature: the
// templates carry {placeholder} tokens substituted from form values.
type MailtoPreview struct {
	Enabled         bool   `json:"enabled"`
	To              string `json:"to"`
	SubjectTemplate string `json:"subjectTemplate"`
	BodyTemplate    string `json:"bodyTemplate"`
	Template        string `json:"template"`
	Label           string `json:"label"`
}

type ContactForm struct {
	Title           string        `json:"title"`
	Fields          []FormField   `json:"fields"`
	PrimaryButton   Button        `json:"primaryButton"`
	SecondaryButton Button        `json:"secondaryButton"`
	Mailto          MailtoPreview `json:"previewMailto"`
}

type Contact struct {
	ID           string      `json:"id"`
	Kicker       string      `json:"kicker"`
	Headline     string      `json:"headline"`
	Subheadline  string      `json:"subheadline"`
	ResponseTime string      `json:"responseTime"`
	DirectLine   DirectLine  `json:"directLine"`
	Form         ContactForm `json:"form"`
}

type ProfileCard struct {
	Icon      string   `json:"icon"`
	Name      string   `json:"name"`
	TitleLine string   `json:"titleLine"`
	Summary   string   `json:"summary"`
	TechChips []string `json:"techChips"`
}

type ConnectLink struct {
	Platform string `json:"platform"`
	Key      string `json:"key"`
	Href     string `json:"href"`
}

type ConnectCard struct {
	Label string        `json:"label"`
	Links []ConnectLink `json:"links"`
}

type StatusCard struct {
	Label            string       `json:"label"`
	ShowClock        bool         `json:"showClock"`
	AvailabilityPill Availability `json:"availabilityPill"`
}

type CTACard struct {
	Headline string `json:"headline"`
	Icon     string `json:"icon"`
	Links    []CTA  `json:"links"`
	Version  string `json:"version"`
}

type Bento struct {
	ProfileCard ProfileCard `json:"profileCard"`
	ConnectCard ConnectCard `json:"connectCard"`
	StatusCard  StatusCard  `json:"statusCard"`
	CTACard     CTACard     `json:"ctaCard"`
}

type Credits struct {
	Left   string `json:"left"`
	Middle string `json:"middle"`
	Right  string `json:"right"`
}

type Footer struct {
	ID      string  `json:"id"`
	Bento   Bento   `json:"bento"`
	Credits Credits `json:"credits"`
}
