package cipherpb

import (
	"github.com/inklabs/vigenere"
)

// ToCipherRequest translates a message, key and vigenere.Direction into a cipherpb.CipherRequest.
func ToCipherRequest(message, key string, direction vigenere.Direction) *CipherRequest {
	return &CipherRequest{
		Message:  message,
		Key:      key,
		Reversed: direction == vigenere.Reversed,
	}
}

// ToDirection returns the vigenere.Direction requested by a cipherpb.CipherRequest.
func ToDirection(request *CipherRequest) vigenere.Direction {
	if request.GetReversed() {
		return vigenere.Reversed
	}

	return vigenere.Forward
}
