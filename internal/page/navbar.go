package page

import (
	"time"

	"github.com/Zachkp/showcase/internal/menu"
	"github.com/Zachkp/showcase/internal/stagger"
)

type NavbarView struct {
	Initials string
	Links    []stagger.Item[Link]
	Contact  stagger.Item[Link]
	Socials  []stagger.Item[Link]
	Brand    time.Duration
}

func newNavbar(d Deps) *Section {
	r := d.Registry
	links := navLinks(r.NavLinks)
	socials := socialLinks(r.NavbarSocials())
	contact := newLink("Contact", "#contact", "")

	bar := newBlock("navbar", "navbar-bar", 0, stagger.Seconds(0.5, 0.1), d, func(st Stagger) any {
		// brand, links, contact, socials share one sequence
		return NavbarView{
			Initials: r.Profile.Initials,
			Brand:    st.Delay(0),
			Links:    Items(st, 1, links),
			Contact:  stagger.Item[Link]{Value: contact, Delay: st.Delay(1 + len(links))},
			Socials:  Items(st, 2+len(links), socials),
		}
	})
	bar.OnMount = true

	return &Section{
		Name:   "navbar",
		Blocks: []*Block{bar},
		view: func(p *Page) any {
			return p.RenderBlock(bar)
		},
	}
}

// MenuView is the mobile menu overlay.
type MenuView struct {
	Open     bool
	Toggle   string
	Close    string
	Resume   string
	Links    []stagger.Item[Link]
	Contact  Link
	Download Resume
	Socials  []Link
}

var menuStagger = stagger.Seconds(0.3, 0.1)

func (p *Page) MenuView() MenuView {
	r := p.deps.Registry
	return MenuView{
		Open:     p.Menu.IsOpen(),
		Toggle:   p.endpoint("menu/toggle"),
		Close:    p.endpoint("menu/close"),
		Resume:   p.endpoint("menu/resume"),
		Links:    stagger.Apply(menuStagger, navLinks(r.NavLinks)),
		Contact:  newLink("Contact", "#contact", ""),
		Download: p.deps.Resume,
		Socials:  socialLinks(r.NavbarSocials()),
	}
}

// MenuDelay is the start delay of the i-th entry after the nav links.
func (v MenuView) MenuDelay(i int) time.Duration {
	return menuStagger.Delay(len(v.Links) + i)
}

// FireMenu applies a menu trigger and returns the new menu rendering.
func (p *Page) FireMenu(trigger menu.Trigger) MenuView {
	p.mu.Lock()
	p.Menu.Fire(trigger)
	p.mu.Unlock()
	return p.MenuView()
}
