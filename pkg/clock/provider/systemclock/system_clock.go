package systemclock

import (
	"time"
)

type systemClock struct{}

// New constructs a clock.Clock that reads the wall clock.
func New() *systemClock {
	return &systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
