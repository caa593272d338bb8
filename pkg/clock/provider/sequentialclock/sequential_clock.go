package sequentialclock

import (
	"sync"
	"time"
)

type sequentialClock struct {
	mux     sync.Mutex
	seconds int64
}

// New constructs a clock.Clock that starts at the Unix epoch and advances
// one second on every call.
func New() *sequentialClock {
	return &sequentialClock{}
}

func (c *sequentialClock) Now() time.Time {
	c.mux.Lock()
	defer c.mux.Unlock()

	now := time.Unix(c.seconds, 0)
	c.seconds++
	return now
}
