// Package keygen generates Vigenère keywords.
package keygen

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

// Byte offsets of a version 4 UUID that carry fixed version and variant bits.
const (
	versionByte = 6
	variantByte = 8
)

// Length is the number of letters in a generated keyword.
const Length = len(uuid.UUID{}) - 2

// Generator is the interface that produces keywords.
type Generator interface {
	// New returns a new keyword made of uppercase letters.
	New() string
}

// New returns a random keyword of Length uppercase letters, one per random
// UUID byte.
func New() string {
	id := uuid.New()
	buf := make([]byte, 0, Length)
	for i, b := range id {
		if i == versionByte || i == variantByte {
			continue
		}
		buf = append(buf, 'A'+b%26)
	}
	return string(buf)
}

// SetRand makes generated keywords deterministic. Intended for tests.
func SetRand(seed int64) {
	uuid.SetRand(rand.New(rand.NewSource(seed)))
}

type letterGenerator struct{}

// NewLetterGenerator constructs a Generator backed by New.
func NewLetterGenerator() *letterGenerator {
	return &letterGenerator{}
}

func (g *letterGenerator) New() string {
	return New()
}

type staticGenerator struct {
	mux   sync.Mutex
	keys  []string
	index int
}

// NewStaticGenerator constructs a Generator that cycles through keys.
func NewStaticGenerator(keys ...string) *staticGenerator {
	return &staticGenerator{
		keys: keys,
	}
}

func (g *staticGenerator) New() string {
	g.mux.Lock()
	defer g.mux.Unlock()

	if len(g.keys) == 0 {
		return ""
	}

	key := g.keys[g.index%len(g.keys)]
	g.index++
	return key
}
