// Package heap implements a binary min-heap priority queue over intrusive
// nodes. Every node carries its own position in the backing array and the
// queue keeps that position current through every restructuring, which is
// what makes the operations a plain heap cannot offer efficient: O(1)
// membership tests and O(log n) removal or re-prioritisation of arbitrary
// nodes, not just the minimum.
//
// The queue has a fixed capacity and never grows itself. Callers compare
// Len against Cap before pushing and call Grow when more room is needed.
// The queue performs no locking; wrap access in a mutex or use the
// identity-keyed queue in the parent package for concurrent use.
//
// Key features:
//   - Generic over both the stored value and the priority type
//   - O(log n) push, pop, arbitrary remove and priority update
//   - O(1) peek and membership tests
//   - Optional first-in-first-out ordering among equal priorities
//   - Optional unchecked mode that trades precondition errors for speed
//
// Basic usage:
//
//	// Smaller priorities dequeue first.
//	q := heap.NewOrdered[string, int](8)
//
//	a := heap.NewNode[string, int]("build")
//	b := heap.NewNode[string, int]("test")
//	_ = q.Push(a, 2)
//	_ = q.Push(b, 1)
//
//	// Arbitrary nodes can be re-prioritised or removed directly.
//	_ = q.Update(a, 0)
//	_ = q.Remove(b)
//
//	n, err := q.Pop()
//	if err == nil {
//	    fmt.Println(n.Value()) // build
//	}
//
// Precondition checking is on by default: contract violations such as
// popping an empty queue or pushing a node that is already enqueued return
// descriptive errors. Constructing the queue with Unchecked skips the
// validation entirely, in which case violating a contract yields undefined
// behaviour. Validate performs a full O(n) structural audit and is meant
// for tests and diagnostics.
//
// Nodes are owned by the queue for as long as they are enqueued. A node
// that has been popped or removed can be pushed again into the same queue;
// reusing it in a different queue requires ResetNode first.
package heap
