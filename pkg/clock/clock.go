package clock

import (
	"time"
)

// Clock is the time source used when recording key deletions.
type Clock interface {
	Now() time.Time
}
