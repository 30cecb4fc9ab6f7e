package domain

import "math/rand/v2"

// Rand is the source of randomness used for pool shuffling and candidate
// picks. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRand returns a goroutine-safe Rand backed by the math/rand/v2
// top-level functions.
func DefaultRand() Rand {
	return globalRand{}
}
