package crypto

import (
	"github.com/inklabs/vigenere/pkg/keygen"
)

type engine struct {
	keyStore     KeyStore
	encryptor    Encryptor
	keyGenerator keygen.Generator
}

// EngineOption defines functional option parameters for engine.
type EngineOption func(*engine)

// WithKeyGenerator is a functional option to inject a keygen.Generator.
func WithKeyGenerator(generator keygen.Generator) EngineOption {
	return func(engine *engine) {
		engine.keyGenerator = generator
	}
}

// NewEngine constructs an Engine that resolves keywords from store by subjectID.
func NewEngine(store KeyStore, encryptor Encryptor, options ...EngineOption) *engine {
	e := &engine{
		keyStore:     store,
		encryptor:    encryptor,
		keyGenerator: keygen.NewLetterGenerator(),
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// Encrypt enciphers data with the subject's keyword, generating and saving a
// new keyword on first use. When a concurrent first use saves its keyword
// first, that keyword is used instead.
func (e *engine) Encrypt(subjectID, data string) (string, error) {
	key, err := e.keyStore.Get(subjectID)
	if err == ErrKeyNotFound {
		key = e.keyGenerator.New()
		err = e.keyStore.Set(subjectID, key)
		if err == ErrKeyExistsForSubjectID {
			key, err = e.keyStore.Get(subjectID)
		}
	}

	if err != nil {
		return "", err
	}

	return e.encryptor.Encrypt(key, data)
}

// Decrypt deciphers cipherText with the subject's keyword.
func (e *engine) Decrypt(subjectID, cipherText string) (string, error) {
	key, err := e.keyStore.Get(subjectID)
	if err != nil {
		return "", err
	}

	return e.encryptor.Decrypt(key, cipherText)
}

// Delete removes the subject's keyword. Data enciphered with it can no longer
// be deciphered through this Engine.
func (e *engine) Delete(subjectID string) error {
	return e.keyStore.Delete(subjectID)
}
