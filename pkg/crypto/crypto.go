package crypto

import (
	"fmt"
)

// Engine defines how to encrypt/decrypt by subjectID, and forget a subject's key.
type Engine interface {
	Encryptor
	Delete(subjectID string) error
}

// Encryptor defines how to encrypt/decrypt string data with a key.
type Encryptor interface {
	Encrypt(key, data string) (string, error)
	Decrypt(key, cipherText string) (string, error)
}

// KeyStore defines how to save, retrieve and delete keywords by subjectID.
type KeyStore interface {
	Get(subjectID string) (string, error)
	Set(subjectID, key string) error
	Delete(subjectID string) error
}

// ErrKeyWasDeleted encryption key was removed error.
var ErrKeyWasDeleted = fmt.Errorf("removed from key store")

// ErrKeyNotFound encryption key was not found error.
var ErrKeyNotFound = fmt.Errorf("key not found")

// ErrInvalidKey encryption key is not valid error.
var ErrInvalidKey = fmt.Errorf("invalid encryption key")

// ErrKeyExistsForSubjectID encryption key already exists error.
var ErrKeyExistsForSubjectID = fmt.Errorf("key already exists for subject")

// ErrInvalidCipherText sealed data could not be opened error.
var ErrInvalidCipherText = fmt.Errorf("invalid cipher text")
