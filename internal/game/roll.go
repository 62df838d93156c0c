package game

import (
	"crypto/rand"
	"math/big"
)

// randInt returns a uniform int64 in [0, n).
func randInt(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		// Fallback - should never happen
		return 0
	}
	return v.Int64()
}

// RollPercent returns a uniform roll in [1, 100].
func RollPercent() int {
	return int(randInt(100)) + 1
}

// RandRange returns a uniform int in [lo, hi] inclusive.
func RandRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(randInt(int64(hi-lo+1)))
}

// RandFloat returns a uniform float64 in [0, 1).
func RandFloat() float64 {
	const precision = 1_000_000
	return float64(randInt(precision)) / precision
}
