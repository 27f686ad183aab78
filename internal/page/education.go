package page

import (
	"time"

	"github.com/Zachkp/showcase/internal/content"
	"github.com/Zachkp/showcase/internal/pointer"
	"github.com/Zachkp/showcase/internal/stagger"
)

type EducationView struct {
	Institution string
	Degree      string
	Duration    string
	Score       string
	Icon        content.Icon
}

type AchievementView struct {
	Title       string
	Description string
	Icon        content.Icon
	// Glow offsets the pulsing highlight of each card.
	Glow time.Duration
}

// ColumnView is one revealed column of the education section.
type ColumnView[T any] struct {
	Title string
	Items []stagger.Item[T]
}

var glowStagger = stagger.Seconds(0, 0.5)

func newEducation(d Deps) *Section {
	r := d.Registry
	header := newHeader("education", d)

	schools := make([]EducationView, len(r.Education))
	for i, e := range r.Education {
		schools[i] = EducationView{Institution: e.Institution, Degree: e.Degree, Duration: e.Duration, Score: e.Score, Icon: content.ParseIcon(e.Icon)}
	}
	achievements := make([]AchievementView, len(r.Achievements))
	for i, a := range r.Achievements {
		achievements[i] = AchievementView{Title: a.Title, Description: a.Description, Icon: content.ParseIcon(a.Icon), Glow: glowStagger.Delay(i)}
	}

	seq := stagger.Seconds(0.2, 0.15)
	list := newBlock("education-list", "education-list", 0.2, seq, d, func(st Stagger) any {
		return ColumnView[EducationView]{Title: "Education", Items: Items(st, 0, schools)}
	})
	awards := newBlock("education-achievements", "education-achievements", 0.2, seq, d, func(st Stagger) any {
		return ColumnView[AchievementView]{Title: "Achievements", Items: Items(st, 0, achievements)}
	})

	return &Section{
		Name:     "education",
		Anchor:   "education",
		Blocks:   []*Block{header, list, awards},
		Tracker:  pointer.NewTracker(pointer.DocumentClient, ""),
		Gradient: pointer.Gradient{Glow: glowAccent, Reach: 40, Base: baseDark},
		view:     headed(header, []*Block{list, awards}),
	}
}
