package cachekeystore

import (
	"github.com/inklabs/vigenere/pkg/crypto"
)

type cacheKeyStore struct {
	first  crypto.KeyStore
	second crypto.KeyStore
}

// New constructs a read-through crypto.KeyStore. first is the cache and second
// is the source of truth.
func New(first crypto.KeyStore, second crypto.KeyStore) *cacheKeyStore {
	return &cacheKeyStore{
		first:  first,
		second: second,
	}
}

func (c *cacheKeyStore) Get(subjectID string) (string, error) {
	key, err := c.first.Get(subjectID)
	if err == nil {
		return key, nil
	}

	if err == crypto.ErrKeyWasDeleted {
		return "", err
	}

	secondKey, secondErr := c.second.Get(subjectID)
	if secondErr != nil {
		return "", secondErr
	}

	return secondKey, c.first.Set(subjectID, secondKey)
}

func (c *cacheKeyStore) Set(subjectID, key string) error {
	err := c.second.Set(subjectID, key)
	if err != nil {
		return err
	}

	return c.first.Set(subjectID, key)
}

func (c *cacheKeyStore) Delete(subjectID string) error {
	err := c.second.Delete(subjectID)
	if err != nil {
		return err
	}

	return c.first.Delete(subjectID)
}
