package stagger

import (
	"math"
	"time"
)

// Sequencer assigns start delays to an ordered list of children:
// Initial + index*Interval.
type Sequencer struct {
	Initial  time.Duration
	Interval time.Duration
}

// Seconds builds a Sequencer from fractional seconds, the unit animation
// parameters are usually written in.
func Seconds(initial, interval float64) Sequencer {
	return Sequencer{Initial: fromSeconds(initial), Interval: fromSeconds(interval)}
}

func fromSeconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func (s Sequencer) Delay(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return s.Initial + time.Duration(index)*s.Interval
}

// Item is a value paired with its position and start delay.
type Item[T any] struct {
	Value T
	Index int
	Delay time.Duration
}

// Apply pairs each value with its delay, keeping the input order.
func Apply[T any](s Sequencer, values []T) []Item[T] {
	items := make([]Item[T], len(values))
	for i, v := range values {
		items[i] = Item[T]{Value: v, Index: i, Delay: s.Delay(i)}
	}
	return items
}

// Timeline anchors a Sequencer at the moment the parent was revealed.
// Children start independently once their own delay has elapsed.
type Timeline struct {
	Sequencer
	Start    time.Time
	Duration time.Duration
}

func (s Sequencer) From(start time.Time, duration time.Duration) Timeline {
	return Timeline{Sequencer: s, Start: start, Duration: duration}
}

// Started reports whether child i has begun animating at now. A timeline
// with a zero Start has not been released.
func (t Timeline) Started(index int, now time.Time) bool {
	if t.Start.IsZero() {
		return false
	}
	return !now.Before(t.Start.Add(t.Delay(index)))
}

// Settled reports whether child i has finished animating at now.
func (t Timeline) Settled(index int, now time.Time) bool {
	if t.Start.IsZero() {
		return false
	}
	return !now.Before(t.Start.Add(t.Delay(index) + t.Duration))
}

// Remaining returns how long child i still waits before starting. It is
// zero once the child has started.
func (t Timeline) Remaining(index int, now time.Time) time.Duration {
	if t.Start.IsZero() {
		return t.Delay(index)
	}
	left := t.Start.Add(t.Delay(index)).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
