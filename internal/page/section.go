package page

import (
	"html/template"
	"time"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/clock"
	"github.com/Zachkp/showcase/internal/content"
	"github.com/Zachkp/showcase/internal/pointer"
)

// Deps is what every section is built from. It is shared by all pages and
// never mutated.
type Deps struct {
	Registry *content.Registry
	Images   *assets.Resolver
	Clock    clock.Clock
	Resume   Resume
	// PointerThrottle, when positive, rate-limits pointer events in the
	// browser.
	PointerThrottle time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Registry == nil {
		d.Registry = &content.Registry{}
	}
	if d.Clock == nil {
		d.Clock = clock.Real{}
	}
	if d.Resume.Href == "" {
		d.Resume.Href = "/resume.pdf"
	}
	if d.Resume.Filename == "" {
		d.Resume.Filename = d.Registry.Profile.ResumeFilename
	}
	return d
}

// Section is one view component of the page.
type Section struct {
	Name string
	// Anchor is the element id navigation links can target. Empty for
	// sections that are not navigable.
	Anchor   string
	Blocks   []*Block
	Tracker  *pointer.Tracker
	Gradient pointer.Gradient

	view func(p *Page) any
}

// BackgroundID is the element id of the section's pointer-tracked layer.
func (s *Section) BackgroundID() string {
	return "bg-" + s.Name
}

// Background renders the current gradient layer. Untracked sections get
// no style.
func (s *Section) Background() Background {
	bg := Background{ID: s.BackgroundID()}
	if s.Tracker != nil {
		bg.Style = template.CSS("background: " + s.Gradient.CSS(s.Tracker.Position()))
	}
	return bg
}

// SectionView is the template data for a whole section.
type SectionView struct {
	Name       string
	Anchor     string
	Background Background
	Data       any
}

// Tracked sections share these layers.
const (
	glowAccent = "rgba(208, 255, 113, 0.07)"
	baseDark   = "#1a1a1a"
)

// build assembles the sections in page order.
func build(d Deps) []*Section {
	return []*Section{
		newNavbar(d),
		newHero(d),
		newAbout(d),
		newSkills(d),
		newExperience(d),
		newProjects(d),
		newEducation(d),
		newContact(d),
		newFooter(d),
	}
}

// Anchors lists the navigable section anchors in page order.
func Anchors() []string {
	var out []string
	for _, s := range build(Deps{}.withDefaults()) {
		if s.Anchor != "" {
			out = append(out, s.Anchor)
		}
	}
	return out
}
