// Package ivalqueue implements the max-heap and endpoint cache shared by
// the adaptive quadrature engine in package quad.
//
// Queue wraps a container/heap-managed max-heap ordered by descending
// per-interval absolute error, paired with a side cache keyed on the bit-identical
// representation of each interval's endpoints (IEEE-754 bit patterns, not
// float comparison — this sidesteps NaN and -0.0/+0.0 ambiguity). The two
// structures are mutated atomically: every push inserts into both, every
// pop removes from both. A pop whose key is missing from the cache is a
// programming error in the caller, not a recoverable condition, and panics
// with ErrCacheMiss.
package ivalqueue
