package ivalqueue_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gokronrod/ivalqueue"
	"github.com/katalvlaran/gokronrod/kronrod"
	"github.com/stretchr/testify/require"
)

func TestPushPopOrder(t *testing.T) {
	q := ivalqueue.New(4)
	q.Push(ivalqueue.Interval{A: 0, B: 1}, kronrod.Vector{1}, 0.5, 0.001)
	q.Push(ivalqueue.Interval{A: 1, B: 2}, kronrod.Vector{1}, 0.9, 0.001)
	q.Push(ivalqueue.Interval{A: 2, B: 3}, kronrod.Vector{1}, 0.1, 0.001)

	require.Equal(t, 3, q.Len())
	first := q.PopMax()
	require.Equal(t, 0.9, first.AbsErr)
	second := q.PopMax()
	require.Equal(t, 0.5, second.AbsErr)
	third := q.PopMax()
	require.Equal(t, 0.1, third.AbsErr)
	require.True(t, q.IsEmpty())
}

func TestPopOrderNonIncreasing(t *testing.T) {
	q := ivalqueue.New(8)
	errs := []float64{0.3, 0.9, 0.1, 0.9, 0.5, 0.0}
	for i, e := range errs {
		q.Push(ivalqueue.Interval{A: float64(i), B: float64(i) + 1}, kronrod.Vector{1}, e, 0)
	}
	prev := math.Inf(1)
	for !q.IsEmpty() {
		e := q.PopMax()
		require.LessOrEqual(t, e.AbsErr, prev)
		prev = e.AbsErr
	}
}

func TestCacheMirrorsHeap(t *testing.T) {
	q := ivalqueue.New(2)
	iv := ivalqueue.Interval{A: 0, B: 1}
	q.Push(iv, kronrod.Vector{2}, 0.2, 0.01)

	key := ivalqueue.KeyOf(iv)
	entry, ok := q.Lookup(key)
	require.True(t, ok)
	require.Equal(t, kronrod.Vector{2}, entry.Result)

	popped := q.PopMax()
	require.Equal(t, key, popped.Key)
	_, ok = q.Lookup(key)
	require.False(t, ok, "cache entry must be removed atomically with pop")
}

func TestBitIdentityDistinguishesZero(t *testing.T) {
	posZero := ivalqueue.Interval{A: 0.0, B: 1}
	negZero := ivalqueue.Interval{A: math.Copysign(0, -1), B: 1}
	require.NotEqual(t, ivalqueue.KeyOf(posZero), ivalqueue.KeyOf(negZero))
}

func TestDrainDecreasingOrder(t *testing.T) {
	q := ivalqueue.New(4)
	for i, e := range []float64{0.1, 0.7, 0.4, 0.9} {
		q.Push(ivalqueue.Interval{A: float64(i), B: float64(i) + 1}, kronrod.Vector{1}, e, 0)
	}
	drained := q.Drain()
	require.Len(t, drained, 4)
	for i := 1; i < len(drained); i++ {
		require.LessOrEqual(t, drained[i].AbsErr, drained[i-1].AbsErr)
	}
	require.True(t, q.IsEmpty())
}
