package algo

import (
	"container/heap"

	"github.com/Cylos9/Hybrid-A-Star/internal/core"
)

// queueEntry is one (key, f) pair in the open priority queue. seq
// breaks ties by insertion order.
type queueEntry struct {
	key core.CellKey
	f   float64
	seq int
}

// entryHeap is the container/heap backing store; openQueue wraps it
// with push/pop helpers and a sequence counter. Stale entries (a key
// pushed more than once on decrease-key) are tolerated: the caller
// must check the popped f against the open set's current value and
// skip mismatches.
type entryHeap []queueEntry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(queueEntry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

type openQueue struct {
	h   entryHeap
	seq int
}

func newOpenQueue() *openQueue {
	q := &openQueue{}
	heap.Init(&q.h)
	return q
}

// push records a (possibly improved) f for key. Callers push again on
// decrease-key rather than mutating in place; the stale duplicate is
// filtered out at pop time.
func (q *openQueue) push(key core.CellKey, f float64) {
	q.seq++
	heap.Push(&q.h, queueEntry{key: key, f: f, seq: q.seq})
}

func (q *openQueue) pop() (core.CellKey, float64, bool) {
	if q.h.Len() == 0 {
		return 0, 0, false
	}
	e := heap.Pop(&q.h).(queueEntry)
	return e.key, e.f, true
}

func (q *openQueue) empty() bool { return q.h.Len() == 0 }
