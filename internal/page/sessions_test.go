package page

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/showcase/internal/clock"
)

func TestSessionsLifecycle(t *testing.T) {
	clk := clock.NewMock(epoch)
	s := NewSessions(Deps{Registry: testRegistry(), Clock: clk}, time.Minute, nil)

	p := s.Open()
	require.NotEmpty(t, p.ID)
	assert.True(t, p.Mounted())
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Same(t, p, got)

	assert.True(t, s.Close(p.ID))
	assert.False(t, p.Mounted())
	assert.False(t, s.Close(p.ID))
	_, ok = s.Get(p.ID)
	assert.False(t, ok)
}

func TestSessionsSweepIdle(t *testing.T) {
	clk := clock.NewMock(epoch)
	s := NewSessions(Deps{Registry: testRegistry(), Clock: clk}, time.Minute, nil)

	idle := s.Open()
	busy := s.Open()

	clk.Advance(45 * time.Second)
	s.Get(busy.ID)
	clk.Advance(30 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	assert.False(t, idle.Mounted())
	assert.True(t, busy.Mounted())
	assert.Equal(t, 1, s.Len())
}

func TestSessionsRunUnmountsOnShutdown(t *testing.T) {
	s := NewSessions(Deps{Registry: testRegistry()}, time.Hour, nil)
	p := s.Open()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	assert.False(t, p.Mounted())
	assert.Equal(t, 0, s.Len())
}
