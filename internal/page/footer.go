package page

import (
	"strings"
	"time"

	"github.com/Zachkp/showcase/internal/stagger"
)

type FooterView struct {
	Initials string
	Email    Link
	Phone    Link
	Socials  []stagger.Item[Link]
	Credit   string
	Name     string
	Year     int
	// Steps: brand, email, phone, socials row, credit.
	Steps []time.Duration
}

func newFooter(d Deps) *Section {
	r := d.Registry
	p := r.Profile
	email := newLink(p.Email, "mailto:"+p.Email, "mail")
	phoneLabel := p.PhoneDisplay
	if phoneLabel == "" {
		phoneLabel = p.Phone
	}
	phone := newLink(phoneLabel, "tel:"+strings.ReplaceAll(p.Phone, " ", ""), "phone")
	socials := socialLinks(r.Socials)

	block := newBlock("footer-content", "footer-content", 0.3, stagger.Seconds(0, 0.2), d, func(st Stagger) any {
		return FooterView{
			Initials: p.Initials,
			Email:    email,
			Phone:    phone,
			Socials:  Items(st.Nested(3, 100*time.Millisecond), 0, socials),
			Credit:   p.Credit,
			Name:     p.Name,
			Year:     d.Clock.Now().Year(),
			Steps:    st.Steps(5),
		}
	})

	return &Section{
		Name:   "footer",
		Blocks: []*Block{block},
		view: func(pg *Page) any {
			return pg.RenderBlock(block)
		},
	}
}
