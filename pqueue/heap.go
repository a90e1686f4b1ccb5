package pqueue

import "container/heap"

// HeapQueue is a min-heap over (Score, EdgeID), ordered ascending by score
// and, on ties, by edge id for deterministic popping.
// Grounded on dijkstra's nodePQ: a lazy-decrease-key container/heap
// wrapper that tolerates duplicate/stale entries rather than supporting
// true decrease-key.
type HeapQueue struct {
	h innerHeap
}

// NewHeapQueue returns an empty HeapQueue ready for use.
func NewHeapQueue() *HeapQueue {
	q := &HeapQueue{}
	heap.Init(&q.h)

	return q
}

// Push adds e to the heap.
func (q *HeapQueue) Push(e Entry) {
	heap.Push(&q.h, e)
}

// Pop removes and returns the lowest-score entry.
func (q *HeapQueue) Pop() (Entry, error) {
	if q.h.Len() == 0 {
		return Entry{}, ErrEmpty
	}

	return heap.Pop(&q.h).(Entry), nil
}

// Len reports the number of entries currently stored, including any that
// may turn out to be stale on pop.
func (q *HeapQueue) Len() int {
	return q.h.Len()
}

// innerHeap implements container/heap.Interface over []Entry.
type innerHeap []Entry

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}

	return h[i].EdgeID < h[j].EdgeID
}

func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
