package page

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Zachkp/showcase/internal/content"
)

// Link is a rendered anchor. A disabled link has no href and cannot be
// activated.
type Link struct {
	Label    string
	Href     template.URL
	Icon     content.Icon
	Disabled bool
	External bool
}

func newLink(label, href, icon string) Link {
	l := Link{Label: label, Icon: content.ParseIcon(icon)}
	if content.IsDisabled(href) {
		l.Disabled = true
		return l
	}
	l.Href = template.URL(href)
	l.External = strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
	return l
}

func socialLinks(socials []content.SocialLink) []Link {
	out := make([]Link, len(socials))
	for i, s := range socials {
		out[i] = newLink(s.Platform, s.URL, s.Icon)
	}
	return out
}

func navLinks(links []content.NavLink) []Link {
	out := make([]Link, len(links))
	for i, n := range links {
		out[i] = newLink(n.Label, n.Href(), "")
	}
	return out
}

// Resume is the download action.
type Resume struct {
	Href     template.URL
	Filename string
}

// Heading is the title pair at the top of a section.
type Heading struct {
	Title    string
	Subtitle string
}

func heading(r *content.Registry, anchor string) Heading {
	c := r.SectionCopy(anchor)
	return Heading{Title: c.Title, Subtitle: c.Subtitle}
}

// Background is the pointer-tracked layer of a section, swapped out of band
// on every pointer update.
type Background struct {
	ID    string
	Style template.CSS
}

// Image sizes used for placeholders.
const (
	portraitSize = 480
	logoSize     = 96
	shotWidth    = 800
	shotHeight   = 450
)

// Seconds formats a delay for CSS, e.g. 0.35s.
func Seconds(d time.Duration) template.CSS {
	return template.CSS(fmt.Sprintf("%.2fs", d.Seconds()))
}

// slug turns a label into an id fragment.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
