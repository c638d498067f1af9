package pqdict

import (
	"cmp"
	"iter"
)

// Pair couples a key with a priority. It is the element type accepted by the
// constructors to seed a queue.
type Pair[K comparable, P any] struct {
	Key      K
	Priority P
}

// entry is one node of the heap array.
type entry[K comparable, P any] struct {
	key      K
	priority P
}

// Queue is an indexed priority queue mapping unique keys to priorities.
//
// Internally it stores entries in a binary heap laid out in a slice, plus an
// index from key to heap position. Both are maintained together by every
// mutating operation. The less function decides rank: less(a, b) reports
// whether priority a ranks higher (closer to the top) than priority b.
//
// The zero value is not usable; construct queues with New, NewMax, NewFunc,
// FromMap or FromFunc.
type Queue[K comparable, P any] struct {
	heap  []entry[K, P]
	index map[K]int
	less  func(a, b P) bool
}

// New creates a min-ordered queue: lower priority values rank higher. This
// is the usual choice for schedules, where earlier times outrank later ones.
// Duplicate keys among pairs collapse to the last priority supplied.
func New[K comparable, P cmp.Ordered](pairs ...Pair[K, P]) *Queue[K, P] {
	q, _ := NewFunc[K, P](func(a, b P) bool { return a < b }, pairs...)
	return q
}

// NewMax creates a max-ordered queue: higher priority values rank higher.
// Duplicate keys among pairs collapse to the last priority supplied.
func NewMax[K comparable, P cmp.Ordered](pairs ...Pair[K, P]) *Queue[K, P] {
	q, _ := NewFunc[K, P](func(a, b P) bool { return a > b }, pairs...)
	return q
}

// NewFunc creates a queue ranked by a user-supplied comparator. less(a, b)
// must report whether a ranks higher than b and must be a strict weak
// ordering. Duplicate keys among pairs collapse to the last priority
// supplied. Returns ErrInvalidInput if less is nil.
func NewFunc[K comparable, P any](less func(a, b P) bool, pairs ...Pair[K, P]) (*Queue[K, P], error) {
	if less == nil {
		return nil, ErrInvalidInput
	}
	q := &Queue[K, P]{
		heap:  make([]entry[K, P], 0, len(pairs)),
		index: make(map[K]int, len(pairs)),
		less:  less,
	}
	for _, p := range pairs {
		if pos, ok := q.index[p.Key]; ok {
			q.heap[pos].priority = p.Priority
			continue
		}
		q.index[p.Key] = len(q.heap)
		q.heap = append(q.heap, entry[K, P]{key: p.Key, priority: p.Priority})
	}
	q.heapify()
	return q, nil
}

// FromMap creates a min-ordered queue holding every key of m with its
// mapped priority.
func FromMap[K comparable, P cmp.Ordered](m map[K]P) *Queue[K, P] {
	q := New[K, P]()
	for k, p := range m {
		q.index[k] = len(q.heap)
		q.heap = append(q.heap, entry[K, P]{key: k, priority: p})
	}
	q.heapify()
	return q
}

// FromFunc creates a min-ordered queue from a sequence of keys, computing
// each key's priority with the given function. Duplicate keys in the
// sequence collapse to the last computed priority. Returns ErrInvalidInput
// if keys or priority is nil.
func FromFunc[K comparable, P cmp.Ordered](keys iter.Seq[K], priority func(K) P) (*Queue[K, P], error) {
	if keys == nil || priority == nil {
		return nil, ErrInvalidInput
	}
	q := New[K, P]()
	for k := range keys {
		if pos, ok := q.index[k]; ok {
			q.heap[pos].priority = priority(k)
			continue
		}
		q.index[k] = len(q.heap)
		q.heap = append(q.heap, entry[K, P]{key: k, priority: priority(k)})
	}
	q.heapify()
	return q, nil
}

// Len returns the number of keys in the queue.
func (q *Queue[K, P]) Len() int {
	return len(q.heap)
}

// Contains reports whether key is in the queue.
func (q *Queue[K, P]) Contains(key K) bool {
	_, ok := q.index[key]
	return ok
}

// Get returns the priority of key, or false if key is not present.
func (q *Queue[K, P]) Get(key K) (P, bool) {
	pos, ok := q.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	return q.heap[pos].priority, true
}

// Set inserts key with the given priority, or re-prioritizes key if it is
// already present. Cost is O(log n) either way.
func (q *Queue[K, P]) Set(key K, priority P) {
	if pos, ok := q.index[key]; ok {
		q.heap[pos].priority = priority
		q.fix(pos)
		return
	}
	pos := len(q.heap)
	q.heap = append(q.heap, entry[K, P]{key: key, priority: priority})
	q.index[key] = pos
	q.swim(pos, 0)
}

// Add inserts a new key. Returns ErrKeyExists if key is already present.
func (q *Queue[K, P]) Add(key K, priority P) error {
	if _, ok := q.index[key]; ok {
		return ErrKeyExists
	}
	q.Set(key, priority)
	return nil
}

// Update re-prioritizes an existing key. Returns ErrKeyNotFound if key is
// not present.
func (q *Queue[K, P]) Update(key K, priority P) error {
	if _, ok := q.index[key]; !ok {
		return ErrKeyNotFound
	}
	q.Set(key, priority)
	return nil
}

// Delete removes key from the queue and returns the priority it had.
// Returns ErrKeyNotFound if key is not present.
func (q *Queue[K, P]) Delete(key K) (P, error) {
	pos, ok := q.index[key]
	if !ok {
		var zero P
		return zero, ErrKeyNotFound
	}
	removed := q.heap[pos].priority
	delete(q.index, key)

	// Move the last entry into the vacated slot and repair from there.
	last := len(q.heap) - 1
	moved := q.heap[last]
	q.heap[last] = entry[K, P]{}
	q.heap = q.heap[:last]
	if pos != last {
		q.heap[pos] = moved
		q.index[moved.key] = pos
		q.fix(pos)
	}
	return removed, nil
}

// Pop removes and returns the top-ranked key and its priority. Returns
// ErrEmpty if the queue is empty. Ties rank arbitrarily.
func (q *Queue[K, P]) Pop() (K, P, error) {
	if len(q.heap) == 0 {
		var zeroK K
		var zeroP P
		return zeroK, zeroP, ErrEmpty
	}
	top := q.heap[0]
	delete(q.index, top.key)

	last := len(q.heap) - 1
	moved := q.heap[last]
	q.heap[last] = entry[K, P]{}
	q.heap = q.heap[:last]
	if last > 0 {
		q.heap[0] = moved
		q.index[moved.key] = 0
		q.sink(0)
	}
	return top.key, top.priority, nil
}

// Peek returns the top-ranked key and its priority without removing it.
// Returns ErrEmpty if the queue is empty.
func (q *Queue[K, P]) Peek() (K, P, error) {
	if len(q.heap) == 0 {
		var zeroK K
		var zeroP P
		return zeroK, zeroP, ErrEmpty
	}
	return q.heap[0].key, q.heap[0].priority, nil
}

// Keys returns a lazy, restartable sequence of the keys in heap-array
// order, which is NOT priority order. Callers needing keys in priority
// order should Pop repeatedly, typically from a Clone. The queue must not
// be mutated while a traversal is in progress.
func (q *Queue[K, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range q.heap {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the queue. The copy shares the
// comparator but nothing else; mutating one queue never affects the other.
func (q *Queue[K, P]) Clone() *Queue[K, P] {
	c := &Queue[K, P]{
		heap:  make([]entry[K, P], len(q.heap)),
		index: make(map[K]int, len(q.index)),
		less:  q.less,
	}
	copy(c.heap, q.heap)
	for k, pos := range q.index {
		c.index[k] = pos
	}
	return c
}
