package client

import (
	"context"
	"time"

	"bandroom/internal/pkg/opentime"
)

// Countdown tracks time left until the reservation gate opens.
type Countdown struct {
	openAt *time.Time
	now    func() time.Time
	tick   time.Duration
}

func NewCountdown(openAt *time.Time) *Countdown {
	return &Countdown{openAt: openAt, now: time.Now, tick: time.Second}
}

func (c *Countdown) Open() bool {
	return opentime.IsOpen(c.openAt, c.now())
}

func (c *Countdown) Remaining() time.Duration {
	return opentime.Remaining(c.openAt, c.now())
}

// Wait recomputes the remaining time every tick, calling onTick with it, and
// returns once the gate opens or ctx ends. The last sleep is cut short so
// Wait returns at the open instant rather than on the next tick.
func (c *Countdown) Wait(ctx context.Context, onTick func(time.Duration)) error {
	if c.Open() {
		return nil
	}

	for {
		left := c.Remaining()
		if onTick != nil {
			onTick(left)
		}
		if left <= 0 {
			return nil
		}

		sleep := c.tick
		if left < sleep {
			sleep = left
		}
		t := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}
