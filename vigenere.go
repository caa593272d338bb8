// Package vigenere implements the classical Vigenère polyalphabetic cipher
// over the 26 letter Latin alphabet.
//
// Letters are shifted by a key stream cycled from the letters of a keyword,
// everything else is passed through untouched, and alphabetic output is
// always uppercase. A Machine may additionally reverse its whole output.
// The cipher offers no real secrecy.
package vigenere

import (
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a message or key is empty, or when a key
// contains no letters.
var ErrInvalidArgument = fmt.Errorf("Incorrect arguments!")

// Mode selects between the additive and subtractive shift.
type Mode uint8

const (
	// EncryptMode shifts each letter forward by the key stream.
	EncryptMode Mode = iota
	// DecryptMode shifts each letter backward by the key stream.
	DecryptMode
)

func (m Mode) String() string {
	switch m {
	case EncryptMode:
		return "encrypt"
	case DecryptMode:
		return "decrypt"
	}
	return "unknown"
}

// ParseMode returns the Mode named by input ("encrypt" or "decrypt", case insensitive).
func ParseMode(input string) (Mode, error) {
	switch strings.ToLower(input) {
	case "encrypt":
		return EncryptMode, nil
	case "decrypt":
		return DecryptMode, nil
	}
	return 0, fmt.Errorf("unknown mode: %q", input)
}

// Direction controls the order in which a Machine emits its output.
type Direction uint8

const (
	// Forward emits the transformed text as built.
	Forward Direction = iota
	// Reversed emits the transformed text with its character order inverted.
	Reversed
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reversed:
		return "reversed"
	}
	return "unknown"
}

// ParseDirection returns the Direction named by input ("forward" or "reversed", case insensitive).
// An empty input is Forward.
func ParseDirection(input string) (Direction, error) {
	switch strings.ToLower(input) {
	case "", "forward":
		return Forward, nil
	case "reversed":
		return Reversed, nil
	}
	return 0, fmt.Errorf("unknown direction: %q", input)
}
