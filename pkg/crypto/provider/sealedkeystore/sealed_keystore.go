// Package sealedkeystore encrypts keywords at rest with XChaCha20-Poly1305
// before handing them to another crypto.KeyStore.
package sealedkeystore

import (
	"crypto/cipher"
	cryptoRand "crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/inklabs/vigenere/pkg/crypto"
)

// MasterKeySize is the required master key length in bytes.
const MasterKeySize = chacha20poly1305.KeySize

type sealedKeyStore struct {
	store      crypto.KeyStore
	aead       cipher.AEAD
	randReader io.Reader
}

// Option defines functional option parameters for sealedKeyStore.
type Option func(*sealedKeyStore)

// WithRandReader is a functional option to inject the nonce source.
func WithRandReader(randReader io.Reader) Option {
	return func(store *sealedKeyStore) {
		store.randReader = randReader
	}
}

// New constructs a crypto.KeyStore that seals keywords with masterKey before
// saving them to store.
func New(store crypto.KeyStore, masterKey []byte, options ...Option) (*sealedKeyStore, error) {
	aead, err := chacha20poly1305.NewX(masterKey)
	if err != nil {
		return nil, fmt.Errorf("invalid master key: %v", err)
	}

	s := &sealedKeyStore{
		store:      store,
		aead:       aead,
		randReader: cryptoRand.Reader,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

// NewFromBase64 constructs a sealed crypto.KeyStore from a base64 encoded master key.
func NewFromBase64(store crypto.KeyStore, base64MasterKey string, options ...Option) (*sealedKeyStore, error) {
	masterKey, err := base64.StdEncoding.DecodeString(base64MasterKey)
	if err != nil {
		return nil, fmt.Errorf("invalid master key encoding: %v", err)
	}

	return New(store, masterKey, options...)
}

func (s *sealedKeyStore) Get(subjectID string) (string, error) {
	sealedKey, err := s.store.Get(subjectID)
	if err != nil {
		return "", err
	}

	return s.open(subjectID, sealedKey)
}

func (s *sealedKeyStore) Set(subjectID, key string) error {
	if key == "" {
		return crypto.ErrInvalidKey
	}

	sealedKey, err := s.seal(subjectID, key)
	if err != nil {
		return err
	}

	return s.store.Set(subjectID, sealedKey)
}

func (s *sealedKeyStore) Delete(subjectID string) error {
	return s.store.Delete(subjectID)
}

// seal binds the subjectID as additional data so a sealed keyword cannot be
// moved to another subject.
func (s *sealedKeyStore) seal(subjectID, key string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(s.randReader, nonce); err != nil {
		return "", err
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(key), []byte(subjectID))
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *sealedKeyStore) open(subjectID, base64Sealed string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(base64Sealed)
	if err != nil {
		return "", crypto.ErrInvalidCipherText
	}

	nonceSize := s.aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", crypto.ErrInvalidCipherText
	}

	nonce, cipherText := sealed[:nonceSize], sealed[nonceSize:]
	key, err := s.aead.Open(nil, nonce, cipherText, []byte(subjectID))
	if err != nil {
		return "", crypto.ErrInvalidCipherText
	}

	return string(key), nil
}
