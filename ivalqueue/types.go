package ivalqueue

import (
	"errors"
	"math"

	"github.com/katalvlaran/gokronrod/kronrod"
)

// ErrCacheMiss is raised (via panic, never returned) when a popped
// interval's key has no matching cache entry. This signals a broken heap/
// cache invariant inside this package, not a caller input error.
var ErrCacheMiss = errors.New("ivalqueue: popped interval missing from cache")

// Interval is a closed subinterval [A, B] of the integration domain. This
// package does not check that A < B.
type Interval struct {
	A, B float64
}

// Key identifies an Interval by the raw IEEE-754 bit patterns of its
// endpoints rather than by numeric value, matching the endpoints produced
// by the engine's own arithmetic (each midpoint is generated by exactly
// one expression, so bit-identical inputs always recur as bit-identical
// keys).
type Key struct {
	ABits, BBits uint64
}

// KeyOf derives the cache key for iv.
func KeyOf(iv Interval) Key {
	return Key{
		ABits: math.Float64bits(iv.A),
		BBits: math.Float64bits(iv.B),
	}
}

// Entry is the cached result for one live interval.
type Entry struct {
	Interval Interval
	Key      Key
	Result   kronrod.Vector
	AbsErr   float64
	Roundoff float64
	seq      int64 // insertion order, for stable tie-breaking
}
