package cryptotest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklabs/vigenere/pkg/crypto"
)

// VerifyKeyStore runs the shared KeyStore behavior against stores built by newStore.
func VerifyKeyStore(t *testing.T, newStore func(t *testing.T) crypto.KeyStore) {
	t.Helper()

	t.Run("get", func(t *testing.T) {
		t.Run("not found for unknown subjectID", func(t *testing.T) {
			// Given
			const subjectID = "de85370e9e0e449e9fba3afd4f2142b1"
			store := newStore(t)

			// When
			key, err := store.Get(subjectID)

			// Then
			require.Equal(t, crypto.ErrKeyNotFound, err)
			assert.Equal(t, "", key)
		})

		t.Run("returns previously saved key by subjectID", func(t *testing.T) {
			// Given
			const (
				subjectID   = "b5283ac88b7a4d318f27231be3100125"
				expectedKey = "ALPHONSE"
			)
			store := newStore(t)
			err := store.Set(subjectID, expectedKey)
			require.NoError(t, err)

			// When
			key, err := store.Get(subjectID)

			// Then
			require.NoError(t, err)
			assert.Equal(t, expectedKey, key)
		})

		t.Run("keeps keys separate per subjectID", func(t *testing.T) {
			// Given
			const (
				subjectID1 = "1a0bd3b4f0c04c5c8b8d8f3b56b5a7e1"
				subjectID2 = "7f5d2bcd41a14cd0a0a14c2b0f23c9e2"
				key1       = "LEMON"
				key2       = "LIME"
			)
			store := newStore(t)
			require.NoError(t, store.Set(subjectID1, key1))
			require.NoError(t, store.Set(subjectID2, key2))

			// When
			actualKey1, err1 := store.Get(subjectID1)
			actualKey2, err2 := store.Get(subjectID2)

			// Then
			require.NoError(t, err1)
			require.NoError(t, err2)
			assert.Equal(t, key1, actualKey1)
			assert.Equal(t, key2, actualKey2)
		})
	})

	t.Run("delete", func(t *testing.T) {
		t.Run("removes an existing key by subjectID", func(t *testing.T) {
			// Given
			const (
				subjectID   = "4e16fba8537f4a8d925cd08c0a0656e7"
				expectedKey = "KEYWORD"
			)
			store := newStore(t)
			err := store.Set(subjectID, expectedKey)
			require.NoError(t, err)

			// When
			err = store.Delete(subjectID)

			// Then
			require.NoError(t, err)
			key, err := store.Get(subjectID)
			require.Equal(t, crypto.ErrKeyWasDeleted, err)
			assert.Equal(t, "", key)
		})

		t.Run("does not allow a deleted key to be replaced", func(t *testing.T) {
			// Given
			const (
				subjectID = "c3e0fd0b1a8a4a2e9a3c45c4bd12bb5a"
				key1      = "FIRST"
				key2      = "SECOND"
			)
			store := newStore(t)
			require.NoError(t, store.Set(subjectID, key1))
			require.NoError(t, store.Delete(subjectID))

			// When
			err := store.Set(subjectID, key2)

			// Then
			require.Equal(t, crypto.ErrKeyExistsForSubjectID, err)
			_, err = store.Get(subjectID)
			require.Equal(t, crypto.ErrKeyWasDeleted, err)
		})
	})

	t.Run("set", func(t *testing.T) {
		t.Run("fails due to existing key", func(t *testing.T) {
			// Given
			const (
				subjectID = "a8197ae9932a4791a389f2f6ac9c8eba"
				key1      = "LEMON"
				key2      = "ORANGE"
			)
			store := newStore(t)
			err := store.Set(subjectID, key1)
			require.NoError(t, err)

			// When
			err = store.Set(subjectID, key2)

			// Then
			require.Equal(t, crypto.ErrKeyExistsForSubjectID, err)
		})

		t.Run("fails due to empty key", func(t *testing.T) {
			// Given
			const subjectID = "0c1e8fa7d4b84d5e8d1e0a4b0a7d2c51"
			store := newStore(t)

			// When
			err := store.Set(subjectID, "")

			// Then
			require.Equal(t, crypto.ErrInvalidKey, err)
			_, err = store.Get(subjectID)
			require.Equal(t, crypto.ErrKeyNotFound, err)
		})
	})
}
