package cryptotest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklabs/vigenere"
	"github.com/inklabs/vigenere/pkg/crypto"
	"github.com/inklabs/vigenere/pkg/crypto/cryptotest"
)

const unusedKey = ""

func TestCaesarCipher_VerifyEncryptorInterface(t *testing.T) {
	cryptotest.VerifyEncryptor(t, func(t *testing.T) crypto.Encryptor {
		return cryptotest.NewCaesarCipher(3)
	})
}

func TestCaesarCipher(t *testing.T) {
	const (
		text          = "Too many secrets!"
		encryptedText = "GBB ZNAL FRPERGF!"
	)

	t.Run("encrypts string", func(t *testing.T) {
		// Given
		rot13 := cryptotest.NewCaesarCipher(13)

		// When
		encryptedValue, err := rot13.Encrypt(unusedKey, text)

		// Then
		require.NoError(t, err)
		assert.Equal(t, encryptedText, encryptedValue)
	})

	t.Run("decrypts string", func(t *testing.T) {
		// Given
		rot13 := cryptotest.NewCaesarCipher(13)

		// When
		decryptedValue, err := rot13.Decrypt(unusedKey, encryptedText)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "TOO MANY SECRETS!", decryptedValue)
	})

	t.Run("normalizes negative shift", func(t *testing.T) {
		// Given
		cipher := cryptotest.NewCaesarCipher(-1)

		// When
		encryptedValue, err := cipher.Encrypt(unusedKey, "ab")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "ZA", encryptedValue)
	})
}

func TestVigenereEncryption_AgreesWithCaesarForSingleLetterKeys(t *testing.T) {
	const text = "The quick brown fox jumps over the lazy dog!"
	vigenereEncryptor := crypto.NewVigenereEncryption(vigenere.DirectMachine)

	for shift := 0; shift < 26; shift++ {
		// Given
		key := string(rune('a' + shift))
		caesar := cryptotest.NewCaesarCipher(shift)

		// When
		expected, err := caesar.Encrypt(unusedKey, text)
		require.NoError(t, err)
		actual, err := vigenereEncryptor.Encrypt(key, text)

		// Then
		require.NoError(t, err)
		assert.Equal(t, expected, actual, key)
	}
}

func BenchmarkCaesarCipher(b *testing.B) {
	const (
		text          = "lorem ipsum"
		encryptedText = "YBERZ VCFHZ"
	)
	cipher := cryptotest.NewCaesarCipher(13)

	b.Run("encrypt", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = cipher.Encrypt(unusedKey, text)
		}
	})

	b.Run("decrypt", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = cipher.Decrypt(unusedKey, encryptedText)
		}
	})
}
