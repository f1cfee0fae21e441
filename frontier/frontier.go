package frontier

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmpty indicates ExtractMin was called on an empty frontier.
	ErrEmpty = errors.New("frontier: empty")
	// ErrDuplicate indicates Insert was called for an item already present.
	ErrDuplicate = errors.New("frontier: item already present")
)

// entry is one heap slot: an item, its key and its current heap position.
type entry[T cmp.Ordered] struct {
	item  T
	key   float64
	index int
}

// entryPQ is a min-heap of *entry ordered by key, then item.
type entryPQ[T cmp.Ordered] []*entry[T]

// Len returns the number of items in the heap.
func (pq entryPQ[T]) Len() int { return len(pq) }

// Less orders by key; equal keys fall back to the item order.
func (pq entryPQ[T]) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].item < pq[j].item
}

// Swap swaps two elements and keeps their positions current.
func (pq entryPQ[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x, which must be an *entry[T].
func (pq *entryPQ[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*pq)
	*pq = append(*pq, e)
}

// Pop removes and returns the last element.
func (pq *entryPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*pq = old[:n-1]
	return e
}

// Frontier is an ordered set of items keyed by float64 priorities.
// The zero value is not usable; call New.
type Frontier[T cmp.Ordered] struct {
	pq    entryPQ[T]
	index map[T]*entry[T]
}

// New returns an empty Frontier.
func New[T cmp.Ordered]() *Frontier[T] {
	return &Frontier[T]{index: make(map[T]*entry[T])}
}

// Len returns the number of items.
func (f *Frontier[T]) Len() int { return f.pq.Len() }

// Contains reports whether item is present.
func (f *Frontier[T]) Contains(item T) bool {
	_, ok := f.index[item]
	return ok
}

// Key returns the current key of item.
func (f *Frontier[T]) Key(item T) (float64, bool) {
	e, ok := f.index[item]
	if !ok {
		return 0, false
	}
	return e.key, true
}

// Insert adds item with key. Returns ErrDuplicate if item is already present;
// the existing entry is left untouched.
func (f *Frontier[T]) Insert(item T, key float64) error {
	if _, ok := f.index[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, item)
	}
	e := &entry[T]{item: item, key: key}
	heap.Push(&f.pq, e)
	f.index[item] = e
	return nil
}

// ExtractMin removes and returns the item with the smallest key.
// Returns ErrEmpty when no items remain.
func (f *Frontier[T]) ExtractMin() (T, error) {
	if f.pq.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	e := heap.Pop(&f.pq).(*entry[T])
	delete(f.index, e.item)
	return e.item, nil
}

// PeekMin returns the item ExtractMin would return, without removing it.
func (f *Frontier[T]) PeekMin() (T, bool) {
	if f.pq.Len() == 0 {
		var zero T
		return zero, false
	}
	return f.pq[0].item, true
}

// Remove deletes item. It is a no-op if item is absent.
func (f *Frontier[T]) Remove(item T) {
	e, ok := f.index[item]
	if !ok {
		return
	}
	heap.Remove(&f.pq, e.index)
	delete(f.index, item)
}

// Clear removes every item.
func (f *Frontier[T]) Clear() {
	clear(f.pq)
	f.pq = f.pq[:0]
	clear(f.index)
}

// Items returns the current items in extraction order without modifying f.
func (f *Frontier[T]) Items() []T {
	sorted := slices.Clone(f.pq)
	slices.SortFunc(sorted, func(a, b *entry[T]) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		return cmp.Compare(a.item, b.item)
	})
	items := make([]T, len(sorted))
	for i, e := range sorted {
		items[i] = e.item
	}
	return items
}
