package stagger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

func TestDelay(t *testing.T) {
	s := Seconds(0.3, 0.2)
	assert.Equal(t, 300*ms, s.Delay(0))
	assert.Equal(t, 500*ms, s.Delay(1))
	assert.Equal(t, 900*ms, s.Delay(3))
	assert.Equal(t, 300*ms, s.Delay(-1))

	assert.Equal(t, 0*ms, Sequencer{}.Delay(5))
}

func TestApplyKeepsOrder(t *testing.T) {
	tags := []string{"React", "Node.js", "MongoDB", "Express"}
	items := Apply(Seconds(0, 0.1), tags)

	require.Len(t, items, len(tags))
	for i, it := range items {
		assert.Equal(t, tags[i], it.Value)
		assert.Equal(t, i, it.Index)
		assert.Equal(t, time.Duration(i)*100*ms, it.Delay)
	}
	assert.Empty(t, Apply(Seconds(0, 0.1), []string(nil)))
}

func TestTimelineChildrenStartIndependently(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tl := Seconds(0.2, 0.15).From(start, 800*ms)

	at := func(d time.Duration) time.Time { return start.Add(d) }

	assert.False(t, tl.Started(0, at(100*ms)))
	assert.True(t, tl.Started(0, at(200*ms)))
	assert.False(t, tl.Started(1, at(200*ms)))
	assert.True(t, tl.Started(1, at(350*ms)))

	assert.False(t, tl.Settled(0, at(999*ms)))
	assert.True(t, tl.Settled(0, at(1000*ms)))

	assert.Equal(t, 150*ms, tl.Remaining(1, at(200*ms)))
	assert.Zero(t, tl.Remaining(1, at(time.Second)))
}

func TestUnreleasedTimeline(t *testing.T) {
	tl := Seconds(0.1, 0.1).From(time.Time{}, time.Second)
	now := time.Now()
	assert.False(t, tl.Started(0, now))
	assert.False(t, tl.Settled(0, now))
	assert.Equal(t, 200*ms, tl.Remaining(1, now))
}
