package page

import (
	"time"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/content"
	"github.com/Zachkp/showcase/internal/pointer"
	"github.com/Zachkp/showcase/internal/stagger"
)

type HeroView struct {
	Name       string
	Kicker     string
	TitleLeft  string
	TitleRight string
	Role       string
	Tagline    string
	Photo      assets.Image
	Floating   []stagger.Item[content.Icon]
	Stack      []content.Icon
	Resume     Resume
	// Steps holds the delays of badge, kicker, title, role, tagline and
	// call to action, in that order.
	Steps []time.Duration
}

// floatStagger offsets the endless bobbing of the decorative icons.
var floatStagger = stagger.Seconds(0, 0.5)

func newHero(d Deps) *Section {
	r := d.Registry
	floating := icons(r.Hero.FloatingIcons)
	stack := icons(r.Hero.StackIcons)
	photo := d.Images.Resolve(r.Hero.Photo, r.Profile.Name, portraitSize, portraitSize)

	hero := newBlock("hero-content", "hero-content", 0, stagger.Seconds(0.2, 0.15), d, func(st Stagger) any {
		return HeroView{
			Name:       r.Profile.Name,
			Kicker:     r.Hero.Kicker,
			TitleLeft:  r.Hero.TitleLeft,
			TitleRight: r.Hero.TitleRight,
			Role:       r.Hero.Role,
			Tagline:    r.Hero.Tagline,
			Photo:      photo,
			Floating:   stagger.Apply(floatStagger, floating),
			Stack:      stack,
			Resume:     d.Resume,
			Steps:      st.Steps(6),
		}
	})
	hero.OnMount = true

	return &Section{
		Name:    "hero",
		Anchor:  "home",
		Blocks:  []*Block{hero},
		Tracker: pointer.NewTracker(pointer.Viewport, ""),
		Gradient: pointer.Gradient{
			Glow:  "rgba(208, 255, 113, 0.08)",
			Reach: 50,
			Layers: []string{
				"radial-gradient(circle at 80% 20%, rgba(208, 255, 113, 0.05) 0%, transparent 50%)",
				"radial-gradient(circle at 20% 80%, rgba(208, 255, 113, 0.05) 0%, transparent 50%)",
			},
			Base: baseDark,
		},
		view: func(p *Page) any {
			return p.RenderBlock(hero)
		},
	}
}

func icons(names []string) []content.Icon {
	out := make([]content.Icon, 0, len(names))
	for _, n := range names {
		if i := content.ParseIcon(n); i != content.IconNone {
			out = append(out, i)
		}
	}
	return out
}
