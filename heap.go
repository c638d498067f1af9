package pqdict

// The repair routines below treat the entry being moved as lifted out of the
// array: parents or children are shifted into the hole it leaves, the index
// is rewritten for every shifted entry, and the lifted entry is written back
// exactly once at its final position.

// swim repairs upward from pos when the entry there may outrank its
// ancestors. Parents are sifted down into the hole while the entry outranks
// them; the walk never rises above floor.
func (q *Queue[K, P]) swim(pos, floor int) {
	e := q.heap[pos]
	for pos > floor {
		parent := (pos - 1) / 2
		if !q.less(e.priority, q.heap[parent].priority) {
			break
		}
		q.heap[pos] = q.heap[parent]
		q.index[q.heap[pos].key] = pos
		pos = parent
	}
	q.heap[pos] = e
	q.index[e.key] = pos
}

// sink repairs downward from pos when the entry there may rank below its
// descendants. Rather than swapping with the higher-ranking child at each
// level, it pulls that child up into the hole and keeps descending to a
// leaf, then places the entry at the leaf and lets it swim back up, bounded
// at pos. The bounded swim is required: after the children are pulled up,
// the entry may still outrank some of the entries now above the leaf (equal
// ranking branches, for one), but it can never belong above where the
// descent began. This costs fewer comparisons than the textbook
// swap-with-child loop because most entries sink close to the bottom.
func (q *Queue[K, P]) sink(pos int) {
	top := pos
	e := q.heap[pos]

	child := 2*pos + 1
	for child < len(q.heap) {
		if right := child + 1; right < len(q.heap) && !q.less(q.heap[child].priority, q.heap[right].priority) {
			child = right
		}
		q.heap[pos] = q.heap[child]
		q.index[q.heap[pos].key] = pos
		pos = child
		child = 2*pos + 1
	}

	q.heap[pos] = e
	q.index[e.key] = pos
	q.swim(pos, top)
}

// fix restores heap order after the entry at pos changed priority or was
// moved there from elsewhere in the array. At most one direction needs
// repair: a single change cannot require moving an entry both up and down
// past its original position. One parent comparison decides swim; failing
// that, one comparison against the higher-ranking child decides sink.
func (q *Queue[K, P]) fix(pos int) {
	if pos > 0 {
		if parent := (pos - 1) / 2; q.less(q.heap[pos].priority, q.heap[parent].priority) {
			q.swim(pos, 0)
			return
		}
	}
	child := 2*pos + 1
	if child >= len(q.heap) {
		return
	}
	if right := child + 1; right < len(q.heap) && !q.less(q.heap[child].priority, q.heap[right].priority) {
		child = right
	}
	if q.less(q.heap[child].priority, q.heap[pos].priority) {
		q.sink(pos)
	}
}

// heapify establishes heap order over an arbitrarily ordered array by
// sinking every internal node, last to first. O(n) overall.
func (q *Queue[K, P]) heapify() {
	for pos := len(q.heap)/2 - 1; pos >= 0; pos-- {
		q.sink(pos)
	}
}
