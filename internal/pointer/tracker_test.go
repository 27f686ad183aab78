package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zachkp/showcase/internal/viewport"
)

func event() viewport.PointerEvent {
	return viewport.PointerEvent{
		ClientX:        250,
		ClientY:        200,
		ViewportWidth:  1000,
		ViewportHeight: 800,
		ScrollY:        1800,
		ScrollHeight:   4000,
		Regions: map[string]viewport.Rect{
			"about-section": {Left: 200, Top: 100, Width: 500, Height: 400},
		},
	}
}

func TestComputeBases(t *testing.T) {
	cases := []struct {
		basis Basis
		want  Position
	}{
		{Viewport, Position{X: 25, Y: 25}},
		{Region, Position{X: 10, Y: 25}},
		{DocumentClient, Position{X: 25, Y: 5}},
		{DocumentPage, Position{X: 25, Y: 50}},
	}
	for _, tc := range cases {
		t.Run(tc.basis.String(), func(t *testing.T) {
			got, ok := Compute(tc.basis, "about-section", event())
			assert.True(t, ok)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestComputeRegionIgnoresOutsideMoves(t *testing.T) {
	ev := event()
	ev.ClientX = 50
	_, ok := Compute(Region, "about-section", ev)
	assert.False(t, ok)

	_, ok = Compute(Region, "missing", event())
	assert.False(t, ok)
}

func TestComputeClampsAndRejectsEmptyViewport(t *testing.T) {
	ev := event()
	ev.ClientX = 1500
	ev.ClientY = -20
	got, ok := Compute(Viewport, "", ev)
	assert.True(t, ok)
	assert.Equal(t, Position{X: 100, Y: 0}, got)

	ev.ViewportWidth = 0
	_, ok = Compute(Viewport, "", ev)
	assert.False(t, ok)
}

func TestTrackerStopsAfterUnmount(t *testing.T) {
	bus := viewport.NewBus()
	tr := NewTracker(Viewport, "")
	tr.Mount(&bus.Pointer)
	assert.True(t, tr.Mounted())

	bus.Pointer.Publish(event())
	assert.Equal(t, 1, tr.Updates())
	assert.Equal(t, Position{X: 25, Y: 25}, tr.Position())

	tr.Unmount()
	assert.False(t, tr.Mounted())
	assert.Equal(t, 0, bus.Pointer.Len())

	moved := event()
	moved.ClientX = 900
	bus.Pointer.Publish(moved)
	assert.Equal(t, 1, tr.Updates())
	assert.Equal(t, Position{X: 25, Y: 25}, tr.Position())

	// unmounting again is a no-op
	tr.Unmount()
}

func TestTrackersAreIndependent(t *testing.T) {
	bus := viewport.NewBus()
	hero := NewTracker(Viewport, "")
	projects := NewTracker(DocumentPage, "")
	hero.Mount(&bus.Pointer)
	projects.Mount(&bus.Pointer)

	projects.Unmount()
	bus.Pointer.Publish(event())

	assert.Equal(t, 1, hero.Updates())
	assert.Equal(t, 0, projects.Updates())
}

func TestGradientCSS(t *testing.T) {
	g := Gradient{Glow: "rgba(208, 255, 113, 0.07)", Reach: 40, Base: "#1a1a1a"}
	assert.Equal(t,
		"radial-gradient(circle at 12.50% 40.00%, rgba(208, 255, 113, 0.07) 0%, transparent 40%), #1a1a1a",
		g.CSS(Position{X: 12.5, Y: 40}))

	g = Gradient{Glow: "red", Reach: 50, Layers: []string{"radial-gradient(circle at 80% 20%, blue 0%, transparent 50%)"}}
	assert.Equal(t,
		"radial-gradient(circle at 0.00% 0.00%, red 0%, transparent 50%), radial-gradient(circle at 80% 20%, blue 0%, transparent 50%)",
		g.CSS(Position{}))
}
