package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// NewSessionID returns a unique identifier for a pad session.
func NewSessionID() string {
	return uuid.NewString()
}

// Clock hands out monotonically increasing sequence numbers. The zero value
// is ready to use and never returns 0 from Next.
type Clock struct {
	n uint64
}

// Next advances the clock and returns the new value.
func (c *Clock) Next() uint64 {
	return atomic.AddUint64(&c.n, 1)
}

// Current returns the last value handed out, or 0.
func (c *Clock) Current() uint64 {
	return atomic.LoadUint64(&c.n)
}
