// Package pqdict implements an indexed priority queue: a mutable collection
// of unique keys with orderable priorities, combining a binary heap with a
// key-to-position index so that any key — not just the top one — can be
// updated or removed in O(log n).
//
// The heap gives the usual bounds:
//   - O(1) access to the top-ranked entry
//   - O(log n) removal of the top-ranked entry
//   - O(log n) insertion of a new entry
//
// The position index is kept in lockstep with the heap array under every
// mutation, which additionally gives:
//   - O(1) lookup of any key's priority
//   - O(log n) removal of any key
//   - O(log n) in-place priority update of any key
//
// This makes the queue useful as an updatable schedule, as the frontier in
// graph searches such as Dijkstra or A*, and in any workload where items are
// re-prioritized after insertion.
//
// Basic usage:
//
//	// Create a min-ordered queue (lower priority value = higher rank)
//	pq := pqdict.New[string, int]()
//
//	// Insert or update items
//	pq.Set("task1", 5)
//	pq.Set("task2", 3)
//	pq.Set("task3", 7)
//
//	// Look at the top-ranked item
//	key, priority, err := pq.Peek()
//	if err == nil {
//		fmt.Printf("next: %s = %d\n", key, priority)
//	}
//
//	// Remove and return the top-ranked item
//	key, priority, err = pq.Pop()
//
//	// Re-prioritize an existing item
//	pq.Set("task3", 1)
//
//	// Remove a specific item
//	removed, err := pq.Delete("task1")
//
// Max-ordering is available through NewMax, and arbitrary ranking logic
// through NewFunc with a user-supplied comparator. The comparator must be a
// strict weak ordering; it is fixed for the lifetime of the queue.
//
// A Queue is not safe for concurrent use. Every operation mutates the heap
// and the index jointly, so callers sharing a queue across goroutines must
// hold a single mutex around each call.
package pqdict
