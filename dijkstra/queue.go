package dijkstra

import "github.com/katalvlaran/eventchains/core"

// Item is one frontier entry.
type Item struct {
	Node     core.NodeID
	Distance uint32
}

// before reports whether a pops ahead of b: smaller distance first,
// larger NodeID first on ties.
func before(a, b Item) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}

	return a.Node > b.Node
}

// PriorityQueue is a binary min-heap of Item values.
// The zero value is an empty queue ready to use.
type PriorityQueue struct {
	items []Item
}

// NewPriorityQueue returns an empty queue with room for capacity items.
func NewPriorityQueue(capacity int) *PriorityQueue {
	return &PriorityQueue{items: make([]Item, 0, capacity)}
}

// Len returns the number of queued entries, stale ones included.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Reset empties the queue but keeps its storage.
func (pq *PriorityQueue) Reset() { pq.items = pq.items[:0] }

// Push inserts it. Complexity: O(log n).
func (pq *PriorityQueue) Push(it Item) {
	pq.items = append(pq.items, it)
	pq.up(len(pq.items) - 1)
}

// Pop removes and returns the first item; ok is false on an empty queue.
// Complexity: O(log n).
func (pq *PriorityQueue) Pop() (it Item, ok bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	it = pq.items[0]
	last := n - 1
	pq.items[0] = pq.items[last]
	pq.items = pq.items[:last]
	if last > 0 {
		pq.down(0)
	}

	return it, true
}

// Peek returns the first item without removing it.
func (pq *PriorityQueue) Peek() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}

	return pq.items[0], true
}

func (pq *PriorityQueue) up(i int) {
	h := pq.items
	for i > 0 {
		parent := (i - 1) / 2
		if !before(h[i], h[parent]) {
			return
		}
		h[i], h[parent] = h[parent], h[i]
		i = parent
	}
}

func (pq *PriorityQueue) down(i int) {
	h := pq.items
	n := len(h)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		m := l
		if r := l + 1; r < n && before(h[r], h[l]) {
			m = r
		}
		if !before(h[m], h[i]) {
			return
		}
		h[i], h[m] = h[m], h[i]
		i = m
	}
}
