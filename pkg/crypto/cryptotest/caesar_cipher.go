package cryptotest

import (
	"strings"
)

type caesarCipher struct {
	shift rune
}

// NewCaesarCipher constructs an Encryptor that ignores its key and shifts
// every letter by shift, emitting uppercase. It is the reference a single
// letter Vigenère keyword must agree with.
func NewCaesarCipher(shift int) *caesarCipher {
	return &caesarCipher{
		shift: rune((shift%26 + 26) % 26),
	}
}

func (c caesarCipher) Encrypt(_, data string) (string, error) {
	return strings.Map(c.rotate(c.shift), data), nil
}

func (c caesarCipher) Decrypt(_, cipherText string) (string, error) {
	return strings.Map(c.rotate(26-c.shift), cipherText), nil
}

func (c caesarCipher) rotate(shift rune) func(rune) rune {
	return func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}

		if r < 'A' || r > 'Z' {
			return r
		}

		return 'A' + (r-'A'+shift)%26
	}
}
