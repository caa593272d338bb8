package inmemorykeymutex

import (
	"hash/fnv"
	"sync"
)

type inMemoryKeyMutex struct {
	mux     sync.Mutex
	buckets map[uint32]*sync.Mutex
	size    uint32
}

// New constructs a keymutex.KeyMutex that stripes keys over at most size locks.
func New(size uint16) *inMemoryKeyMutex {
	if size == 0 {
		size = 1
	}

	return &inMemoryKeyMutex{
		buckets: make(map[uint32]*sync.Mutex, size),
		size:    uint32(size),
	}
}

func (m *inMemoryKeyMutex) Get(key string) sync.Locker {
	bucket := bucketOf(key) % m.size

	m.mux.Lock()
	defer m.mux.Unlock()

	locker, ok := m.buckets[bucket]
	if !ok {
		locker = &sync.Mutex{}
		m.buckets[bucket] = locker
	}

	return locker
}

func bucketOf(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32()
}
