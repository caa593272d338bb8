package vigenere

import (
	"strings"
)

// EffectiveKey returns the uppercase letters of key, in order. Every other
// character is dropped.
func EffectiveKey(key string) string {
	var builder strings.Builder
	builder.Grow(len(key))

	for _, char := range strings.ToUpper(key) {
		if char >= 'A' && char <= 'Z' {
			builder.WriteRune(char)
		}
	}

	return builder.String()
}

// keyStream cycles the effective key. It only advances when next is called,
// which the Machine does for letters alone.
type keyStream struct {
	key    string
	cursor int
}

func newKeyStream(key string) *keyStream {
	return &keyStream{
		key: EffectiveKey(key),
	}
}

func (s *keyStream) empty() bool {
	return len(s.key) == 0
}

func (s *keyStream) next() int {
	offset := int(s.key[s.cursor%len(s.key)] - 'A')
	s.cursor++
	return offset
}
