package page

import (
	"fmt"
	"time"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/content"
	"github.com/Zachkp/showcase/internal/pointer"
	"github.com/Zachkp/showcase/internal/stagger"
)

type BadgeView struct {
	Name       string
	Icon       content.Icon
	Color      string
	Background string
}

type ExperienceView struct {
	Company       string
	Role          string
	Duration      string
	Location      string
	Logo          assets.Image
	Contributions []stagger.Item[string]
	TechStack     []stagger.Item[BadgeView]
	// Steps: header, contribution list, tech stack.
	Steps []time.Duration
}

func newExperience(d Deps) *Section {
	header := newHeader("experience", d)

	var cards []*Block
	for i, e := range d.Registry.Experience {
		logo := d.Images.Resolve(e.Logo, e.Company, logoSize, logoSize)
		badges := make([]BadgeView, len(e.TechStack))
		for j, t := range e.TechStack {
			badges[j] = BadgeView{Name: t.Name, Icon: content.ParseIcon(t.Icon), Color: t.Color, Background: t.Background}
		}
		target := fmt.Sprintf("experience-%d", i)
		cards = append(cards, newBlock(target, "experience-card", 0.2, stagger.Seconds(0.1, 0.2), d, func(st Stagger) any {
			return ExperienceView{
				Company:       e.Company,
				Role:          e.Role,
				Duration:      e.Duration,
				Location:      e.Location,
				Logo:          logo,
				Contributions: Items(st.Nested(1, 100*time.Millisecond), 0, e.Contributions),
				TechStack:     Items(st.Nested(2, 100*time.Millisecond), 0, badges),
				Steps:         st.Steps(3),
			}
		}))
	}

	return &Section{
		Name:     "experience",
		Anchor:   "experience",
		Blocks:   append([]*Block{header}, cards...),
		Tracker:  pointer.NewTracker(pointer.Viewport, ""),
		Gradient: pointer.Gradient{Glow: "rgba(208, 255, 113, 0.05)", Reach: 40, Base: baseDark},
		view:     headed(header, cards),
	}
}
