package engine

import (
	"time"

	"github.com/lixenwraith/text-rts/parameter"
)

// Clock measures frame deltas from a TimeProvider
type Clock struct {
	provider TimeProvider
	last     time.Time
}

// NewClock creates a clock whose first delta is measured from now
func NewClock(provider TimeProvider) *Clock {
	return &Clock{
		provider: provider,
		last:     provider.Now(),
	}
}

// Delta returns the time since the previous call, capped at MaxDeltaTime
func (c *Clock) Delta() time.Duration {
	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now

	if dt < 0 {
		return 0
	}
	return min(dt, parameter.MaxDeltaTime)
}
