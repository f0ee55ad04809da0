// Package randutil derives reproducible math/rand/v2 generators from seeds.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// All call sites derive the two PCG seeds the same way, so a seed always
// replays the same deck.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ForHand returns the generator for hand i of a run started from seed.
// Hands are independent so they can be replayed individually.
func ForHand(seed int64, i int) *rand.Rand {
	return New(seed + int64(i))
}

// Seed returns seed unless it is zero, in which case it picks one from the
// clock. Callers log the result so a run can be reproduced.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
