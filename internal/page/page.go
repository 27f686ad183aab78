package page

import (
	"fmt"
	"sync"
	"time"

	"github.com/Zachkp/showcase/internal/clock"
	"github.com/Zachkp/showcase/internal/menu"
	"github.com/Zachkp/showcase/internal/viewport"
)

// Page is one mounted copy of the portfolio in one browser tab. All of its
// interaction state lives here and is discarded on Unmount.
type Page struct {
	ID       string
	Bus      *viewport.Bus
	Menu     menu.Machine
	Sections []*Section

	deps  Deps
	clock clock.Clock

	mu       sync.Mutex
	blocks   map[string]*Block
	mounted  bool
	lastSeen time.Time
}

func New(id string, d Deps) *Page {
	d = d.withDefaults()
	p := &Page{
		ID:       id,
		Bus:      viewport.NewBus(),
		Sections: build(d),
		deps:     d,
		clock:    d.Clock,
		blocks:   make(map[string]*Block),
		lastSeen: d.Clock.Now(),
	}
	for _, s := range p.Sections {
		for _, b := range s.Blocks {
			p.blocks[b.Target] = b
		}
	}
	return p
}

// Mount subscribes every section to the page streams and reveals the
// blocks that animate in on load.
func (p *Page) Mount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mounted {
		return
	}
	for _, s := range p.Sections {
		for _, b := range s.Blocks {
			b.Reveal.Attach(&p.Bus.Scroll)
			if b.OnMount {
				b.Reveal.RevealNow()
			}
		}
		if s.Tracker != nil {
			s.Tracker.Mount(&p.Bus.Pointer)
		}
	}
	p.mounted = true
}

// Unmount releases every subscription. Events published afterwards reach
// no section.
func (p *Page) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.Sections {
		for _, b := range s.Blocks {
			b.Reveal.Detach()
		}
		if s.Tracker != nil {
			s.Tracker.Unmount()
		}
	}
	p.mounted = false
}

func (p *Page) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mounted
}

// Touch records activity for idle expiry.
func (p *Page) Touch() {
	p.mu.Lock()
	p.lastSeen = p.clock.Now()
	p.mu.Unlock()
}

func (p *Page) LastSeen() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

// Block looks up a reveal block by target id.
func (p *Page) Block(target string) (*Block, bool) {
	b, ok := p.blocks[target]
	return b, ok
}

// Reveal reports an intersection ratio for target and returns the block's
// new rendering.
func (p *Page) Reveal(target string, ratio float64) (*Block, BlockView, bool) {
	b, ok := p.blocks[target]
	if !ok {
		return nil, BlockView{}, false
	}
	p.mu.Lock()
	p.Bus.Scroll.Publish(viewport.Intersection{Target: target, Ratio: ratio})
	p.mu.Unlock()
	return b, p.RenderBlock(b), true
}

// Pointer publishes a pointer move and returns the backgrounds of the
// sections it changed.
func (p *Page) Pointer(ev viewport.PointerEvent) []Background {
	p.mu.Lock()
	defer p.mu.Unlock()

	before := make(map[*Section]int)
	for _, s := range p.Sections {
		if s.Tracker != nil {
			before[s] = s.Tracker.Updates()
		}
	}
	p.Bus.Pointer.Publish(ev)

	var changed []Background
	for _, s := range p.Sections {
		if s.Tracker != nil && s.Tracker.Updates() != before[s] {
			changed = append(changed, s.Background())
		}
	}
	return changed
}

func (p *Page) endpoint(action string) string {
	return fmt.Sprintf("/s/%s/%s", p.ID, action)
}

// RenderBlock builds the template data for b as of now.
func (p *Page) RenderBlock(b *Block) BlockView {
	now := p.clock.Now()
	tl := b.Stagger.From(b.Reveal.RevealedAt(), b.Duration)
	return BlockView{
		Target:    b.Target,
		Endpoint:  p.endpoint("reveal/" + b.Target),
		Threshold: b.Reveal.Threshold,
		Visible:   b.Reveal.Visible(),
		Data:      b.build(Stagger{tl: tl, now: now}),
	}
}

// View is the template data for the full document.
type View struct {
	ID       string
	Title    string
	Close    string
	Sections []SectionView
	Menu     MenuView
	Pointer  PointerView
}

// Section returns the named section, or the zero view.
func (v View) Section(name string) SectionView {
	for _, s := range v.Sections {
		if s.Name == name {
			return s
		}
	}
	return SectionView{}
}

// PointerView configures the pointer event source in the browser.
type PointerView struct {
	Endpoint string
	Throttle time.Duration
	Regions  []string
}

// Trigger is the htmx trigger for pointer moves.
func (v PointerView) Trigger() string {
	t := "mousemove from:window"
	if v.Throttle > 0 {
		t += fmt.Sprintf(" throttle:%dms", v.Throttle.Milliseconds())
	}
	return t
}

func (p *Page) View() View {
	v := View{
		ID:    p.ID,
		Title: p.deps.Registry.Profile.Name,
		Close: p.endpoint("close"),
		Menu:  p.MenuView(),
		Pointer: PointerView{
			Endpoint: p.endpoint("pointer"),
			Throttle: p.deps.PointerThrottle,
		},
	}
	for _, s := range p.Sections {
		v.Sections = append(v.Sections, SectionView{
			Name:       s.Name,
			Anchor:     s.Anchor,
			Background: s.Background(),
			Data:       s.view(p),
		})
		if s.Tracker != nil && s.Tracker.Region != "" {
			v.Pointer.Regions = append(v.Pointer.Regions, s.Tracker.Region)
		}
	}
	return v
}
