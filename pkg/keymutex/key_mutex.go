package keymutex

import (
	"sync"
)

// KeyMutex hands out a lock per key so that writes for one subject do not
// block writes for another. Distinct keys may share a lock.
type KeyMutex interface {
	Get(key string) sync.Locker
}
