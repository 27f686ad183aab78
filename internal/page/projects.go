package page

import (
	"fmt"
	"time"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/content"
	"github.com/Zachkp/showcase/internal/pointer"
	"github.com/Zachkp/showcase/internal/stagger"
)

// TagView is a project tag chip. Unknown tags carry no icon.
type TagView struct {
	Name  string
	Icon  content.Icon
	Color string
}

type ProjectView struct {
	Title       string
	Description string
	Image       assets.Image
	Tags        []stagger.Item[TagView]
	Live        Link
	Code        Link
	// Reversed projects put the image on the right.
	Reversed bool
	// Steps: image, title, description, tags, actions.
	Steps []time.Duration
}

func tagViews(tags []string) []TagView {
	out := make([]TagView, len(tags))
	for i, t := range tags {
		style, _ := content.StyleForTag(t)
		out[i] = TagView{Name: t, Icon: style.Icon, Color: style.Color}
	}
	return out
}

func newProjects(d Deps) *Section {
	header := newHeader("projects", d)

	var cards []*Block
	for i, pr := range d.Registry.Projects {
		reversed := i%2 == 1
		image := d.Images.Resolve(pr.Image, pr.Title, shotWidth, shotHeight)
		tags := tagViews(pr.Tags)
		live := newLink("Live Demo", pr.LiveLink, "external")
		code := newLink("View Code", pr.GithubLink, "github")

		target := fmt.Sprintf("project-%d", i)
		cards = append(cards, newBlock(target, "project-card", 0.2, stagger.Seconds(0.2, 0.1), d, func(st Stagger) any {
			return ProjectView{
				Title:       pr.Title,
				Description: pr.Description,
				Image:       image,
				Tags:        Items(st.Nested(3, 50*time.Millisecond), 0, tags),
				Live:        live,
				Code:        code,
				Reversed:    reversed,
				Steps:       st.Steps(5),
			}
		}))
	}

	return &Section{
		Name:     "projects",
		Anchor:   "projects",
		Blocks:   append([]*Block{header}, cards...),
		Tracker:  pointer.NewTracker(pointer.DocumentPage, ""),
		Gradient: pointer.Gradient{Glow: glowAccent, Reach: 40, Base: baseDark},
		view:     headed(header, cards),
	}
}
