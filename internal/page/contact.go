package page

import (
	"time"

	"github.com/Zachkp/showcase/internal/pointer"
	"github.com/Zachkp/showcase/internal/stagger"
)

type ContactCard struct {
	Title string
	Link  Link
	Glow  time.Duration
}

type ContactView struct {
	Heading Heading
	Cards   []stagger.Item[ContactCard]
	// Steps: heading, subtitle.
	Steps []time.Duration
}

var contactGlow = stagger.Seconds(0, 0.7)

func newContact(d Deps) *Section {
	r := d.Registry
	h := heading(r, "contact")
	cards := make([]ContactCard, len(r.Contact))
	for i, c := range r.Contact {
		cards[i] = ContactCard{Title: c.Title, Link: newLink(c.Value, c.Href, c.Icon), Glow: contactGlow.Delay(i)}
	}

	block := newBlock("contact-content", "contact-content", 0.3, stagger.Seconds(0.3, 0.2), d, func(st Stagger) any {
		return ContactView{Heading: h, Cards: Items(st, 2, cards), Steps: st.Steps(2)}
	})

	return &Section{
		Name:     "contact",
		Anchor:   "contact",
		Blocks:   []*Block{block},
		Tracker:  pointer.NewTracker(pointer.DocumentClient, ""),
		Gradient: pointer.Gradient{Glow: glowAccent, Reach: 40, Base: baseDark},
		view: func(p *Page) any {
			return p.RenderBlock(block)
		},
	}
}
