// Package reveal tracks whether a page region has scrolled into view.
//
// A Controller starts Hidden and moves to Visible the first time an
// observed intersection ratio meets its threshold. The transition happens
// once; later observations, including ones reporting the region has left
// the viewport, never move it back.
package reveal

import (
	"sync"
	"time"

	"github.com/Zachkp/showcase/internal/clock"
	"github.com/Zachkp/showcase/internal/viewport"
)

type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Transition is the pure reveal rule: given the current state and an
// observed ratio, it returns the next state.
func Transition(current State, ratio, threshold float64) State {
	if current == Visible {
		return Visible
	}
	if ratio > 0 && ratio >= threshold {
		return Visible
	}
	return Hidden
}

type Controller struct {
	Target    string
	Threshold float64

	clock clock.Clock

	mu         sync.Mutex
	state      State
	revealedAt time.Time
	sub        *viewport.Subscription
}

func New(target string, threshold float64, clk clock.Clock) *Controller {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Controller{Target: target, Threshold: threshold, clock: clk}
}

// Observe feeds one intersection ratio to the controller and returns the
// resulting state.
func (c *Controller) Observe(ratio float64) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := Transition(c.state, ratio, c.Threshold)
	if next == Visible && c.state == Hidden {
		c.revealedAt = c.clock.Now()
	}
	c.state = next
	return c.state
}

// RevealNow marks the controller visible without an observation. Used by
// regions that animate in as soon as they mount.
func (c *Controller) RevealNow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Hidden {
		c.state = Visible
		c.revealedAt = c.clock.Now()
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Visible() bool {
	return c.State() == Visible
}

// RevealedAt returns when the controller became visible, or the zero time.
func (c *Controller) RevealedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealedAt
}

// Attach subscribes the controller to intersection reports for its target.
// Attaching an already attached controller replaces the old subscription.
func (c *Controller) Attach(stream *viewport.Stream[viewport.Intersection]) {
	sub := stream.Subscribe(func(in viewport.Intersection) {
		if in.Target == c.Target {
			c.Observe(in.Ratio)
		}
	})

	c.mu.Lock()
	old := c.sub
	c.sub = sub
	c.mu.Unlock()
	old.Close()
}

// Detach releases the stream subscription. The reveal state is kept.
func (c *Controller) Detach() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()
	sub.Close()
}
