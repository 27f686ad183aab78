package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamDeliversInSubscriptionOrder(t *testing.T) {
	var st Stream[int]
	var got []string

	st.Subscribe(func(v int) { got = append(got, "a") })
	st.Subscribe(func(v int) { got = append(got, "b") })
	st.Subscribe(func(v int) { got = append(got, "c") })

	n := st.Publish(1)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSubscriptionCloseStopsDelivery(t *testing.T) {
	var st Stream[int]
	var a, b int

	subA := st.Subscribe(func(v int) { a += v })
	st.Subscribe(func(v int) { b += v })

	st.Publish(1)
	subA.Close()
	st.Publish(10)

	assert.Equal(t, 1, a)
	assert.Equal(t, 11, b)
	assert.False(t, subA.Active())
	assert.Equal(t, 1, st.Len())

	// closing twice is harmless
	subA.Close()
	assert.Equal(t, 1, st.Len())
}

func TestCloseDuringPublishSkipsLaterHandlers(t *testing.T) {
	var st Stream[int]
	var second *Subscription
	calls := 0

	st.Subscribe(func(int) { second.Close() })
	second = st.Subscribe(func(int) { calls++ })

	n := st.Publish(1)
	assert.Equal(t, 1, n)
	assert.Zero(t, calls)
	assert.Equal(t, 1, st.Len())
}

func TestNilSubscriptionClose(t *testing.T) {
	var sub *Subscription
	assert.NotPanics(t, sub.Close)
	assert.False(t, sub.Active())
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 100, Height: 50}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(110, 70))
	assert.False(t, r.Contains(9, 30))
	assert.False(t, r.Contains(50, 71))
}
