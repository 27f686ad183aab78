package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zachkp/showcase/internal/clock"
	"github.com/Zachkp/showcase/internal/viewport"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name      string
		current   State
		ratio     float64
		threshold float64
		want      State
	}{
		{"below threshold", Hidden, 0.1, 0.2, Hidden},
		{"at threshold", Hidden, 0.2, 0.2, Visible},
		{"above threshold", Hidden, 0.9, 0.5, Visible},
		{"not intersecting with zero threshold", Hidden, 0, 0, Hidden},
		{"visible stays visible when out of view", Visible, 0, 0.5, Visible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Transition(tc.current, tc.ratio, tc.threshold))
		})
	}
}

func TestControllerIsMonotonic(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMock(start)
	c := New("skills-header", 0.5, clk)

	assert.Equal(t, Hidden, c.Observe(0.3))
	assert.True(t, c.RevealedAt().IsZero())

	clk.Advance(time.Second)
	assert.Equal(t, Visible, c.Observe(0.6))
	assert.Equal(t, start.Add(time.Second), c.RevealedAt())

	clk.Advance(time.Second)
	for _, ratio := range []float64{0, 0.1, 1, 0} {
		assert.Equal(t, Visible, c.Observe(ratio))
	}
	assert.Equal(t, start.Add(time.Second), c.RevealedAt(), "reveal time is recorded once")
}

func TestRevealNow(t *testing.T) {
	clk := clock.NewMock(time.Unix(100, 0))
	c := New("hero", 0, clk)
	c.RevealNow()
	assert.True(t, c.Visible())
	assert.Equal(t, time.Unix(100, 0), c.RevealedAt())

	clk.Advance(time.Minute)
	c.RevealNow()
	assert.Equal(t, time.Unix(100, 0), c.RevealedAt())
}

func TestAttachObservesOwnTargetOnly(t *testing.T) {
	bus := viewport.NewBus()
	a := New("a", 0.2, nil)
	b := New("b", 0.2, nil)
	a.Attach(&bus.Scroll)
	b.Attach(&bus.Scroll)

	bus.Scroll.Publish(viewport.Intersection{Target: "a", Ratio: 0.4})
	assert.True(t, a.Visible())
	assert.False(t, b.Visible())

	b.Detach()
	bus.Scroll.Publish(viewport.Intersection{Target: "b", Ratio: 1})
	assert.False(t, b.Visible(), "detached controller ignores the stream")
	assert.Equal(t, 1, bus.Scroll.Len())
}

func TestReattachReplacesSubscription(t *testing.T) {
	bus := viewport.NewBus()
	c := New("a", 0.2, nil)
	c.Attach(&bus.Scroll)
	c.Attach(&bus.Scroll)
	assert.Equal(t, 1, bus.Scroll.Len())
	c.Detach()
	assert.Equal(t, 0, bus.Scroll.Len())
}
