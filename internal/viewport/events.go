package viewport

// Rect is a client-space rectangle as reported by getBoundingClientRect.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the client point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width && y >= r.Top && y <= r.Top+r.Height
}

// PointerEvent is one pointer move as observed by the browser.
type PointerEvent struct {
	ClientX        float64
	ClientY        float64
	ViewportWidth  float64
	ViewportHeight float64
	ScrollY        float64
	ScrollHeight   float64
	// Regions holds the client rects of tracked regions keyed by element id.
	Regions map[string]Rect
}

// Intersection reports how much of a reveal target is inside the viewport.
type Intersection struct {
	Target string
	Ratio  float64
}

// Bus is the pair of broadcast streams one page shares between its sections.
type Bus struct {
	Pointer Stream[PointerEvent]
	Scroll  Stream[Intersection]
}

func NewBus() *Bus {
	return &Bus{}
}
