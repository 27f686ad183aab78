package pointer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Zachkp/showcase/internal/viewport"
)

// Basis selects what the pointer position is measured against.
type Basis int

const (
	// Viewport: x over the window width, y over the window height.
	Viewport Basis = iota
	// Region: relative to a named region; moves outside it are ignored.
	Region
	// DocumentClient: x over the window width, client y over the full
	// document scroll height.
	DocumentClient
	// DocumentPage: x over the window width, page y (client y plus scroll
	// offset) over the full document scroll height.
	DocumentPage
)

func (b Basis) String() string {
	switch b {
	case Viewport:
		return "viewport"
	case Region:
		return "region"
	case DocumentClient:
		return "document-client"
	case DocumentPage:
		return "document-page"
	}
	return fmt.Sprintf("basis(%d)", int(b))
}

// Position is a pointer location in percent of the measured area, each
// axis clamped to [0, 100].
type Position struct {
	X float64
	Y float64
}

// Compute measures ev against basis. The boolean is false when the event
// carries nothing measurable for the basis, such as a zero-sized viewport
// or a pointer outside the region.
func Compute(basis Basis, region string, ev viewport.PointerEvent) (Position, bool) {
	switch basis {
	case Viewport:
		return percent(ev.ClientX, ev.ViewportWidth, ev.ClientY, ev.ViewportHeight)
	case Region:
		r, ok := ev.Regions[region]
		if !ok || !r.Contains(ev.ClientX, ev.ClientY) {
			return Position{}, false
		}
		return percent(ev.ClientX-r.Left, r.Width, ev.ClientY-r.Top, r.Height)
	case DocumentClient:
		return percent(ev.ClientX, ev.ViewportWidth, ev.ClientY, ev.ScrollHeight)
	case DocumentPage:
		return percent(ev.ClientX, ev.ViewportWidth, ev.ClientY+ev.ScrollY, ev.ScrollHeight)
	}
	return Position{}, false
}

func percent(x, w, y, h float64) (Position, bool) {
	if w <= 0 || h <= 0 {
		return Position{}, false
	}
	return Position{X: clamp(x / w * 100), Y: clamp(y / h * 100)}, true
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// Tracker follows the pointer for one section while mounted.
type Tracker struct {
	Basis  Basis
	Region string

	mu      sync.Mutex
	pos     Position
	updates int
	sub     *viewport.Subscription
}

func NewTracker(basis Basis, region string) *Tracker {
	return &Tracker{Basis: basis, Region: region}
}

// Mount subscribes to the pointer stream. Mounting twice replaces the
// earlier subscription.
func (t *Tracker) Mount(stream *viewport.Stream[viewport.PointerEvent]) {
	sub := stream.Subscribe(t.handle)

	t.mu.Lock()
	old := t.sub
	t.sub = sub
	t.mu.Unlock()
	old.Close()
}

// Unmount releases the subscription. No update happens after it returns.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	sub := t.sub
	t.sub = nil
	t.mu.Unlock()
	sub.Close()
}

func (t *Tracker) Mounted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sub.Active()
}

func (t *Tracker) handle(ev viewport.PointerEvent) {
	pos, ok := Compute(t.Basis, t.Region, ev)
	if !ok {
		return
	}
	t.mu.Lock()
	t.pos = pos
	t.updates++
	t.mu.Unlock()
}

func (t *Tracker) Position() Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

// Updates counts the events that changed the published position.
func (t *Tracker) Updates() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.updates
}

// Gradient describes the cosmetic background that follows the pointer.
type Gradient struct {
	Glow   string   // color at the pointer, e.g. rgba(208, 255, 113, 0.08)
	Reach  int      // percent at which the glow fades out
	Layers []string // fixed layers drawn under the glow
	Base   string   // final background layer
}

// CSS renders the background shorthand for the glow centered at p.
func (g Gradient) CSS(p Position) string {
	layers := make([]string, 0, len(g.Layers)+2)
	layers = append(layers, fmt.Sprintf("radial-gradient(circle at %.2f%% %.2f%%, %s 0%%, transparent %d%%)", p.X, p.Y, g.Glow, g.Reach))
	layers = append(layers, g.Layers...)
	if g.Base != "" {
		layers = append(layers, g.Base)
	}
	return strings.Join(layers, ", ")
}
