package crypto

import (
	"github.com/inklabs/vigenere"
)

type vigenereEncryption struct {
	machine *vigenere.Machine
}

// NewVigenereEncryption constructs an Encryptor backed by a vigenere.Machine.
func NewVigenereEncryption(machine *vigenere.Machine) *vigenereEncryption {
	return &vigenereEncryption{
		machine: machine,
	}
}

// Encrypt returns data enciphered with the keyword key.
func (v *vigenereEncryption) Encrypt(key, data string) (string, error) {
	return v.machine.Encrypt(data, key)
}

// Decrypt returns cipherText deciphered with the keyword key.
func (v *vigenereEncryption) Decrypt(key, cipherText string) (string, error) {
	return v.machine.Decrypt(cipherText, key)
}
