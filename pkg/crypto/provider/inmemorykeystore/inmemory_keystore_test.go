package inmemorykeystore_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklabs/vigenere/pkg/crypto"
	"github.com/inklabs/vigenere/pkg/crypto/cryptotest"
	"github.com/inklabs/vigenere/pkg/crypto/provider/inmemorykeystore"
)

func TestInMemoryKeyStore_VerifyKeyStoreInterface(t *testing.T) {
	cryptotest.VerifyKeyStore(t, func(t *testing.T) crypto.KeyStore {
		return inmemorykeystore.New()
	})
}

func TestInMemoryKeyStore_ConcurrentSet(t *testing.T) {
	// Given
	const (
		subjectID = "f2b9c0a4e4b24a7f9d0c51d5b2c3e4f5"
		workers   = 20
	)
	store := inmemorykeystore.New()
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	// When
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Set(subjectID, "LEMON")
		}()
	}
	wg.Wait()
	close(errs)

	// Then
	successes := 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.Equal(t, crypto.ErrKeyExistsForSubjectID, err)
	}
	assert.Equal(t, 1, successes)
	key, err := store.Get(subjectID)
	require.NoError(t, err)
	assert.Equal(t, "LEMON", key)
}
