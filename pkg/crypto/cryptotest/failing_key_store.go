package cryptotest

import (
	"fmt"
)

type failingKeyStore struct{}

// NewFailingKeyStore always errors on Get/Set/Delete
func NewFailingKeyStore() *failingKeyStore {
	return &failingKeyStore{}
}

func (f *failingKeyStore) Get(_ string) (string, error) {
	return "", fmt.Errorf("failingKeyStore:Get")
}

func (f *failingKeyStore) Set(_, _ string) error {
	return fmt.Errorf("failingKeyStore:Set")
}

func (f *failingKeyStore) Delete(_ string) error {
	return fmt.Errorf("failingKeyStore:Delete")
}
