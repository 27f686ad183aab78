package page

import (
	"github.com/Zachkp/showcase/internal/content"
	"github.com/Zachkp/showcase/internal/pointer"
	"github.com/Zachkp/showcase/internal/stagger"
)

type SkillView struct {
	Name        string
	Description string
	Color       string
	Icon        content.Icon
}

type SkillGroupView struct {
	Category content.Category
	Skills   []stagger.Item[SkillView]
}

// HeadedSection is a section with a revealed heading followed by
// independently revealed blocks.
type HeadedSection struct {
	Header BlockView
	Blocks []BlockView
}

func newHeader(anchor string, d Deps) *Block {
	h := heading(d.Registry, anchor)
	return newBlock(anchor+"-header", "section-header", 0.5, stagger.Sequencer{}, d, func(Stagger) any {
		return h
	})
}

func headed(header *Block, blocks []*Block) func(p *Page) any {
	return func(p *Page) any {
		v := HeadedSection{Header: p.RenderBlock(header)}
		for _, b := range blocks {
			v.Blocks = append(v.Blocks, p.RenderBlock(b))
		}
		return v
	}
}

func newSkills(d Deps) *Section {
	header := newHeader("skills", d)

	var groups []*Block
	for _, g := range d.Registry.SkillGroups() {
		skills := make([]SkillView, len(g.Skills))
		for i, s := range g.Skills {
			skills[i] = SkillView{Name: s.Name, Description: s.Description, Color: s.Color, Icon: content.ParseIcon(s.Icon)}
		}
		category := g.Category
		groups = append(groups, newBlock("skills-"+slug(string(category)), "skill-group", 0.2, stagger.Seconds(0, 0.1), d, func(st Stagger) any {
			return SkillGroupView{Category: category, Skills: Items(st, 0, skills)}
		}))
	}

	return &Section{
		Name:     "skills",
		Anchor:   "skills",
		Blocks:   append([]*Block{header}, groups...),
		Tracker:  pointer.NewTracker(pointer.DocumentClient, ""),
		Gradient: pointer.Gradient{Glow: glowAccent, Reach: 40, Base: baseDark},
		view:     headed(header, groups),
	}
}
