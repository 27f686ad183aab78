package page

import (
	"time"

	"github.com/Zachkp/showcase/internal/reveal"
	"github.com/Zachkp/showcase/internal/stagger"
)

// Block is one independently revealed region of a section. It is rendered
// on its own by the reveal endpoint, so its template must produce a single
// element whose id is Target.
type Block struct {
	Target   string
	Template string
	Reveal   *reveal.Controller
	Stagger  stagger.Sequencer
	Duration time.Duration
	// OnMount blocks reveal as soon as the page mounts instead of waiting
	// for an intersection.
	OnMount bool

	build func(Stagger) any
}

func newBlock(target, template string, threshold float64, seq stagger.Sequencer, d Deps, build func(Stagger) any) *Block {
	return &Block{
		Target:   target,
		Template: template,
		Reveal:   reveal.New(target, threshold, d.Clock),
		Stagger:  seq,
		Duration: 800 * time.Millisecond,
		build:    build,
	}
}

// BlockView is the template data for a block.
type BlockView struct {
	Target    string
	Endpoint  string
	Threshold float64
	Visible   bool
	Data      any
}

// Stagger hands out child delays for one render of a block. Before the
// block is revealed every child gets its full delay; afterwards each child
// only waits for what is left of it, so a re-render never restarts the
// sequence.
type Stagger struct {
	tl  stagger.Timeline
	now time.Time
}

func (s Stagger) Delay(index int) time.Duration {
	return s.tl.Remaining(index, s.now)
}

// Steps returns the delays of the first n children.
func (s Stagger) Steps(n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = s.Delay(i)
	}
	return out
}

// Nested returns a sequence that starts when child slot does and spaces its
// own children by interval.
func (s Stagger) Nested(slot int, interval time.Duration) Stagger {
	seq := stagger.Sequencer{Initial: s.tl.Delay(slot), Interval: interval}
	return Stagger{tl: seq.From(s.tl.Start, s.tl.Duration), now: s.now}
}

// Items pairs values with their delays, starting at child offset.
func Items[T any](s Stagger, offset int, values []T) []stagger.Item[T] {
	items := make([]stagger.Item[T], len(values))
	for i, v := range values {
		items[i] = stagger.Item[T]{Value: v, Index: i, Delay: s.Delay(offset + i)}
	}
	return items
}
