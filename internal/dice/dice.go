// Package dice is the single source of randomness for a session.
//
// Every draw the game makes (initiative, attack rolls, damage, encounter and
// loot selection) goes through a Source, so a test can replace the generator
// with a Script and assert exact outcomes.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source returns uniformly distributed integers.
type Source interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed is replaced by one read from
// crypto/rand.
func New(seed int64) (Source, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Between draws an integer in [lo, hi], both inclusive.
func Between(src Source, lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("dice: empty range %d..%d", lo, hi))
	}
	return lo + src.IntN(hi-lo+1)
}

// Coin reports heads with probability one half.
func Coin(src Source) bool {
	return src.IntN(2) == 0
}
