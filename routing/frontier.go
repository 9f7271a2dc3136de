package routing

import "container/heap"

// Frontier is a min-priority queue of labels ordered by a comparator
// fixed at construction. It imposes no uniqueness: stale duplicates for
// an already-improved state may sit in the queue and are discarded by the
// search when extracted (lazy decrease-key).
type Frontier struct {
	h labelHeap
}

// NewFrontier creates an empty frontier ordered by less.
func NewFrontier(less func(a, b *Label) bool) *Frontier {
	return &Frontier{h: labelHeap{less: less}}
}

// Insert queues a label.
func (f *Frontier) Insert(l *Label) {
	heap.Push(&f.h, l)
}

// ExtractMin removes and returns the minimum label, or nil when the
// frontier is empty.
func (f *Frontier) ExtractMin() *Label {
	if f.h.Len() == 0 {
		return nil
	}
	return heap.Pop(&f.h).(*Label)
}

// Empty reports whether the frontier holds no labels.
func (f *Frontier) Empty() bool { return f.h.Len() == 0 }

// Len returns the number of queued labels, stale entries included.
func (f *Frontier) Len() int { return f.h.Len() }

// labelHeap adapts a label slice to container/heap.
type labelHeap struct {
	items []*Label
	less  func(a, b *Label) bool
}

func (h *labelHeap) Len() int           { return len(h.items) }
func (h *labelHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *labelHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *labelHeap) Push(x any) {
	h.items = append(h.items, x.(*Label))
}

func (h *labelHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}
