package ivalqueue

import (
	"container/heap"

	"github.com/katalvlaran/gokronrod/kronrod"
)

// Queue is a max-heap of Entry ordered by descending AbsErr, backed by a
// side cache mapping each live Entry's Key back to itself. It is not
// safe for concurrent use; callers (the sequential and parallel engines
// in package quad) serialize all access on their coordinating goroutine.
type Queue struct {
	heap  entryHeap
	cache map[Key]*heapElem
	next  int64
}

// heapElem is the heap-internal box around an Entry, carrying its
// own index so the cache can be kept consistent without a linear scan.
type heapElem struct {
	entry Entry
	index int
}

type entryHeap []*heapElem

func (h entryHeap) Len() int { return len(h) }

// Less orders by descending AbsErr (max-heap); ties broken by insertion
// sequence so pop order is a total order compatible with FIFO among equal
// errors.
func (h entryHeap) Less(i, j int) bool {
	if h[i].entry.AbsErr != h[j].entry.AbsErr {
		return h[i].entry.AbsErr > h[j].entry.AbsErr
	}
	return h[i].entry.seq < h[j].entry.seq
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x interface{}) {
	elem := x.(*heapElem)
	elem.index = len(*h)
	*h = append(*h, elem)
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	elem := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return elem
}

// New returns an empty Queue with capacity preallocated for cap entries.
func New(cap int) *Queue {
	return &Queue{
		heap:  make(entryHeap, 0, cap),
		cache: make(map[Key]*heapElem, cap),
	}
}

// Len reports the number of live intervals.
func (q *Queue) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no intervals.
func (q *Queue) IsEmpty() bool { return len(q.heap) == 0 }

// Push inserts iv with its evaluated result into both the heap and the
// cache, atomically.
func (q *Queue) Push(iv Interval, result kronrod.Vector, abserr, roundoff float64) {
	key := KeyOf(iv)
	e := &heapElem{entry: Entry{
		Interval: iv,
		Key:      key,
		Result:   result,
		AbsErr:   abserr,
		Roundoff: roundoff,
		seq:      q.next,
	}}
	q.next++
	heap.Push(&q.heap, e)
	q.cache[key] = e
}

// PopMax removes and returns the entry with the largest AbsErr. It panics
// with ErrCacheMiss if the heap's invariant with the cache has been
// violated, which happens when the same Interval was pushed again while
// an earlier push of it was still live (the second push replaces the
// cache entry).
func (q *Queue) PopMax() Entry {
	elem := heap.Pop(&q.heap).(*heapElem)
	cached, ok := q.cache[elem.entry.Key]
	if !ok || cached != elem {
		panic(ErrCacheMiss)
	}
	delete(q.cache, elem.entry.Key)
	return elem.entry
}

// Lookup returns the cached entry for key, if still live.
func (q *Queue) Lookup(key Key) (Entry, bool) {
	elem, ok := q.cache[key]
	if !ok {
		return Entry{}, false
	}
	return elem.entry, true
}

// Drain repeatedly pops the maximum-error entry until the queue is empty,
// returning entries in decreasing-AbsErr order — used to surface the
// diagnostic interval report in quad.Result.
func (q *Queue) Drain() []Entry {
	out := make([]Entry, 0, q.Len())
	for !q.IsEmpty() {
		out = append(out, q.PopMax())
	}
	return out
}
