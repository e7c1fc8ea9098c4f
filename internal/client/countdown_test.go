package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestCountdown_NoOpenTime(t *testing.T) {
	c := NewCountdown(nil)
	assert.True(t, c.Open())
	assert.Zero(t, c.Remaining())
	assert.NoError(t, c.Wait(context.Background(), nil))
}

func TestCountdown_WaitOpensWithoutRefresh(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 7, 11, 59, 57, 0, time.UTC)}
	openAt := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)

	c := NewCountdown(&openAt)
	c.now = clock.Now
	c.tick = time.Millisecond

	assert.False(t, c.Open())
	assert.Equal(t, 3*time.Second, c.Remaining())

	var seen []time.Duration
	err := c.Wait(context.Background(), func(left time.Duration) {
		seen = append(seen, left)
		clock.Advance(time.Second)
	})

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second, 2 * time.Second, time.Second, 0}, seen)
	assert.True(t, c.Open())
}

func TestCountdown_WaitReturnsAtOpenInstant(t *testing.T) {
	openAt := time.Now().Add(1100 * time.Millisecond)
	c := NewCountdown(&openAt)

	var ticks int
	err := c.Wait(context.Background(), func(time.Duration) { ticks++ })
	late := time.Since(openAt)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, late, time.Duration(0))
	assert.Less(t, late, 200*time.Millisecond)
	assert.GreaterOrEqual(t, ticks, 2)
}

func TestCountdown_WaitHonoursContext(t *testing.T) {
	openAt := time.Now().Add(time.Hour)
	c := NewCountdown(&openAt)
	c.tick = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Wait(ctx, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
