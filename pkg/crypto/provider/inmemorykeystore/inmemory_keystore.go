package inmemorykeystore

import (
	"sync"

	"github.com/inklabs/vigenere/pkg/crypto"
)

type entry struct {
	key     string
	deleted bool
}

type inMemoryKeyStore struct {
	mux     sync.RWMutex
	entries map[string]entry
}

// New constructs an in-memory crypto.KeyStore.
func New() *inMemoryKeyStore {
	return &inMemoryKeyStore{
		entries: make(map[string]entry),
	}
}

func (i *inMemoryKeyStore) Get(subjectID string) (string, error) {
	i.mux.RLock()
	defer i.mux.RUnlock()

	e, ok := i.entries[subjectID]
	if !ok {
		return "", crypto.ErrKeyNotFound
	}

	if e.deleted {
		return "", crypto.ErrKeyWasDeleted
	}

	return e.key, nil
}

func (i *inMemoryKeyStore) Set(subjectID, key string) error {
	if key == "" {
		return crypto.ErrInvalidKey
	}

	i.mux.Lock()
	defer i.mux.Unlock()

	if _, ok := i.entries[subjectID]; ok {
		return crypto.ErrKeyExistsForSubjectID
	}

	i.entries[subjectID] = entry{key: key}

	return nil
}

// Delete leaves a tombstone so the subject can never be given a new key.
func (i *inMemoryKeyStore) Delete(subjectID string) error {
	i.mux.Lock()
	defer i.mux.Unlock()

	i.entries[subjectID] = entry{deleted: true}

	return nil
}
