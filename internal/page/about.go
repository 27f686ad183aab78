package page

import (
	"time"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/content"
	"github.com/Zachkp/showcase/internal/pointer"
	"github.com/Zachkp/showcase/internal/stagger"
)

// aboutRegion is the element the About pointer glow is measured against.
const aboutRegion = "about-section"

type InterestView struct {
	Name  string
	Icon  content.Icon
	Color string
}

type AboutView struct {
	Heading    string
	Subtitle   string
	Lede       string
	Badge      string
	Photo      assets.Image
	Paragraphs []stagger.Item[content.Paragraph]
	Interests  []stagger.Item[InterestView]
	// Steps: heading, lede, photo.
	Steps []time.Duration
}

type AboutSection struct {
	Region string
	Block  BlockView
}

func newAbout(d Deps) *Section {
	r := d.Registry
	photo := d.Images.Resolve(r.About.Photo, r.Profile.Name, portraitSize, portraitSize)
	interests := make([]InterestView, len(r.About.Interests))
	for i, in := range r.About.Interests {
		interests[i] = InterestView{Name: in.Name, Icon: content.ParseIcon(in.Icon), Color: in.Color}
	}
	paragraphs := r.About.Paragraphs

	block := newBlock("about-content", "about-content", 0.2, stagger.Seconds(0.3, 0.2), d, func(st Stagger) any {
		n := len(paragraphs)
		return AboutView{
			Heading:    r.About.Heading,
			Subtitle:   r.About.Subtitle,
			Lede:       r.About.Lede,
			Badge:      r.About.Badge,
			Photo:      photo,
			Paragraphs: Items(st, 2, paragraphs),
			Interests:  Items(st.Nested(2+n, 100*time.Millisecond), 0, interests),
			Steps:      []time.Duration{st.Delay(0), st.Delay(1), st.Delay(3 + n)},
		}
	})

	return &Section{
		Name:    "about",
		Anchor:  "about",
		Blocks:  []*Block{block},
		Tracker: pointer.NewTracker(pointer.Region, aboutRegion),
		Gradient: pointer.Gradient{
			Glow:  "rgba(208, 255, 113, 0.08)",
			Reach: 40,
			Base:  "linear-gradient(180deg, rgba(26, 26, 26, 0.95) 0%, rgba(26, 26, 26, 1) 100%)",
		},
		view: func(p *Page) any {
			return AboutSection{Region: aboutRegion, Block: p.RenderBlock(block)}
		},
	}
}
