package cryptotest

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklabs/vigenere/pkg/crypto"
)

// VerifyEncryptor runs the shared behavior of letter ciphers that emit in natural order.
func VerifyEncryptor(t *testing.T, newEncryptor func(t *testing.T) crypto.Encryptor) {
	t.Helper()
	const (
		key  = "alphonse"
		text = "Attack at dawn! 42 times."
	)

	t.Run("decrypting the cipher text returns the uppercase text", func(t *testing.T) {
		// Given
		encryptor := newEncryptor(t)
		cipherText, err := encryptor.Encrypt(key, text)
		require.NoError(t, err)

		// When
		plainText, err := encryptor.Decrypt(key, cipherText)

		// Then
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(text), plainText)
	})

	t.Run("preserves length", func(t *testing.T) {
		// Given
		encryptor := newEncryptor(t)

		// When
		cipherText, err := encryptor.Encrypt(key, text)

		// Then
		require.NoError(t, err)
		assert.Equal(t, utf8.RuneCountInString(text), utf8.RuneCountInString(cipherText))
	})

	t.Run("emits uppercase letters and keeps everything else", func(t *testing.T) {
		// Given
		encryptor := newEncryptor(t)

		// When
		cipherText, err := encryptor.Encrypt(key, text)

		// Then
		require.NoError(t, err)
		cipherRunes := []rune(cipherText)
		for i, char := range text {
			if isASCIILetter(char) {
				assert.True(t, cipherRunes[i] >= 'A' && cipherRunes[i] <= 'Z', "position %d", i)
				continue
			}
			assert.Equal(t, char, cipherRunes[i], "position %d", i)
		}
	})
}

func isASCIILetter(char rune) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}
