// Package prioq implements a thread-safe priority queue keyed by item
// identity. On top of the intrusive-node heap engine in the heap
// subpackage it layers a map from item to the nodes currently holding
// it, so callers work purely in terms of their own values: any item can
// be tested for membership in O(1) and removed or re-prioritised in
// O(log n), not just the minimum.
//
// Key features:
//   - Generic over both the item and the priority type
//   - O(log n) enqueue, dequeue, arbitrary remove and priority update
//   - O(1) membership tests and priority lookups
//   - Equal priorities dequeue first-in-first-out
//   - Duplicate items, each copy with its own priority
//   - Safe for concurrent use without external synchronisation
//
// Basic usage:
//
//	// Smaller priorities dequeue first.
//	q := prioq.New[string, int](nil)
//
//	q.Enqueue("write docs", 3)
//	q.Enqueue("fix bug", 1)
//	q.Enqueue("review", 2)
//
//	q.UpdatePriority("write docs", 0)
//
//	for item, ok := q.TryDequeue(); ok; item, ok = q.TryDequeue() {
//	    fmt.Println(item)
//	}
//
// Every operation acquires one mutex for its full duration; the queue
// favours correctness under concurrency over raw throughput. The Try
// variants (TryDequeue, TryRemove, TryUpdatePriority, TryGetPriority,
// TryFirst) report absence with a boolean instead of an error, so a
// concurrent caller can probe and act in a single lock acquisition
// rather than racing a membership check against the action. Throughput
// sensitive single-threaded callers can use the heap subpackage
// directly.
//
// When duplicates of an item are enqueued, Remove, UpdatePriority and
// GetPriority address the oldest-enqueued copy; there is no way to
// target a specific copy. Callers that need to tell duplicates apart
// should wrap their items in distinguishable values.
package prioq
