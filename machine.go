package vigenere

const alphabetSize = 26

// DirectMachine emits ciphered text in natural order.
var DirectMachine = New()

// ReverseMachine emits ciphered text with its character order inverted.
var ReverseMachine = New(WithDirection(Reversed))

// Machine applies the Vigenère cipher. A Machine holds no per-call state and
// is safe for concurrent use.
type Machine struct {
	direction Direction
}

// Option defines functional option parameters for Machine.
type Option func(*Machine)

// WithDirection is a functional option to set the output Direction.
func WithDirection(direction Direction) Option {
	return func(machine *Machine) {
		machine.direction = direction
	}
}

// New constructs a Machine. The default Direction is Forward.
func New(options ...Option) *Machine {
	machine := &Machine{
		direction: Forward,
	}

	for _, option := range options {
		option(machine)
	}

	return machine
}

// Direction returns the configured output Direction.
func (m *Machine) Direction() Direction {
	return m.direction
}

// Encrypt returns the message enciphered with key.
func (m *Machine) Encrypt(message, key string) (string, error) {
	return m.Transform(EncryptMode, message, key)
}

// Decrypt returns the message deciphered with key. Letters come back
// uppercase; the original case is not recoverable.
func (m *Machine) Decrypt(cipherText, key string) (string, error) {
	return m.Transform(DecryptMode, cipherText, key)
}

// Transform enciphers or deciphers message according to mode.
func (m *Machine) Transform(mode Mode, message, key string) (string, error) {
	if message == "" || key == "" {
		return "", ErrInvalidArgument
	}

	stream := newKeyStream(key)
	if stream.empty() {
		return "", ErrInvalidArgument
	}

	sign := 1
	if mode == DecryptMode {
		sign = -1
	}

	output := []rune(message)
	for i, char := range output {
		code, ok := letterCode(char)
		if !ok {
			continue
		}

		output[i] = shift(code, sign*stream.next())
	}

	if m.direction == Reversed {
		reverse(output)
	}

	return string(output), nil
}

func letterCode(char rune) (int, bool) {
	switch {
	case char >= 'A' && char <= 'Z':
		return int(char - 'A'), true
	case char >= 'a' && char <= 'z':
		return int(char - 'a'), true
	}
	return 0, false
}

func shift(code, offset int) rune {
	return rune('A' + (code+offset+alphabetSize)%alphabetSize)
}

func reverse(runes []rune) {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
}
