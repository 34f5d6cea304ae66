package prioq

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/davidvella/prioq/heap"
	"golang.org/x/exp/constraints"
)

// Common errors returned by queue operations.
var (
	// ErrEmptyQueue is returned when dequeuing or peeking an empty queue.
	ErrEmptyQueue = errors.New("prioq: queue is empty")
	// ErrNotFound is returned when an item is not present in the queue.
	ErrNotFound = errors.New("prioq: item not found")
)

// Queue is a thread-safe priority queue keyed by item identity. It pairs a
// single heap engine with a map from item to the nodes currently holding
// that item, so items can be located, re-prioritised or removed in
// O(log n) with O(1) membership tests, without the caller ever handling
// nodes.
//
// Every operation runs under one mutex held for its full duration; the
// Try variants exist so concurrent callers can probe and act in a single
// acquisition instead of racing a membership check against the action.
// Equal priorities dequeue first-in-first-out.
type Queue[T comparable, P any] struct {
	mu     sync.Mutex
	engine *heap.Queue[T, P]
	items  map[T][]*heap.Node[T, P] // insertion-ordered buckets
	none   []*heap.Node[T, P]       // bucket for items denoting "no value"
	isNone func(T) bool
}

// New creates a queue over a naturally ordered priority type; smaller
// priorities dequeue first. A nil opts uses the defaults.
func New[T comparable, P constraints.Ordered](opts *Options[T]) *Queue[T, P] {
	return NewWithComparator[T, P](func(a, b P) bool { return a < b }, opts)
}

// NewWithComparator creates a queue using the given priority comparator.
// The comparator returns true when a should be dequeued before b. A nil
// opts uses the defaults.
func NewWithComparator[T comparable, P any](less func(a, b P) bool, opts *Options[T]) *Queue[T, P] {
	if opts == nil {
		opts = &Options[T]{}
	}
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	isNone := opts.None
	if isNone == nil {
		isNone = func(v T) bool {
			var zero T
			return v == zero
		}
	}
	return &Queue[T, P]{
		engine: heap.New[T, P](capacity, less, heap.WithStableOrder()),
		items:  make(map[T][]*heap.Node[T, P]),
		isNone: isNone,
	}
}

// Len returns the number of items currently enqueued.
func (q *Queue[T, P]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.engine.Len()
}

// Contains reports whether at least one copy of item is enqueued. O(1).
func (q *Queue[T, P]) Contains(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.bucket(item)) > 0
}

// Enqueue adds item with the given priority, growing the underlying engine
// as needed. Duplicates are allowed; each call enqueues a fresh copy.
func (q *Queue[T, P]) Enqueue(item T, priority P) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.enqueue(item, priority)
}

// EnqueueWithoutDuplicates adds item with the given priority only if no
// equal item is already enqueued. It reports whether the item was added.
func (q *Queue[T, P]) EnqueueWithoutDuplicates(item T, priority P) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.bucket(item)) > 0 {
		return false
	}
	q.enqueue(item, priority)
	return true
}

// Dequeue removes and returns the item with the highest priority.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T, P]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.engine.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.dequeue(), nil
}

// TryDequeue is the non-failing form of Dequeue; it reports whether an
// item was dequeued rather than returning an error when the queue is
// empty, so callers need not pair it with an Len check that could race.
func (q *Queue[T, P]) TryDequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.engine.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.dequeue(), true
}

// First returns the item Dequeue would return next, without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T, P]) First() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.engine.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	n, _ := q.engine.Peek()
	return n.Value(), nil
}

// TryFirst is the non-failing form of First.
func (q *Queue[T, P]) TryFirst() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.engine.Len() == 0 {
		var zero T
		return zero, false
	}
	n, _ := q.engine.Peek()
	return n.Value(), true
}

// Remove removes the oldest-enqueued copy of item. If duplicates exist
// only that one copy is removed; the rest keep their priorities. Returns
// ErrNotFound if the item is not enqueued.
func (q *Queue[T, P]) Remove(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	n, ok := q.first(item)
	if !ok {
		return fmt.Errorf("%w: cannot remove", ErrNotFound)
	}
	q.detach(n)
	return nil
}

// TryRemove is the non-failing form of Remove.
func (q *Queue[T, P]) TryRemove(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	n, ok := q.first(item)
	if !ok {
		return false
	}
	q.detach(n)
	return true
}

// UpdatePriority assigns a new priority to the oldest-enqueued copy of
// item. Returns ErrNotFound if the item is not enqueued.
func (q *Queue[T, P]) UpdatePriority(item T, priority P) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	n, ok := q.first(item)
	if !ok {
		return fmt.Errorf("%w: cannot update priority", ErrNotFound)
	}
	_ = q.engine.Update(n, priority)
	return nil
}

// TryUpdatePriority is the non-failing form of UpdatePriority.
func (q *Queue[T, P]) TryUpdatePriority(item T, priority P) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	n, ok := q.first(item)
	if !ok {
		return false
	}
	_ = q.engine.Update(n, priority)
	return true
}

// GetPriority returns the priority of the oldest-enqueued copy of item.
// Returns ErrNotFound if the item is not enqueued.
func (q *Queue[T, P]) GetPriority(item T) (P, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n, ok := q.first(item)
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: cannot get priority", ErrNotFound)
	}
	return n.Priority(), nil
}

// TryGetPriority is the non-failing form of GetPriority.
func (q *Queue[T, P]) TryGetPriority(item T) (P, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n, ok := q.first(item)
	if !ok {
		var zero P
		return zero, false
	}
	return n.Priority(), true
}

// Clear removes every item, resetting the engine and both identity
// structures under a single lock acquisition.
func (q *Queue[T, P]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.engine.Clear()
	q.items = make(map[T][]*heap.Node[T, P])
	q.none = nil
}

// All returns an iterator over the enqueued items in no particular order.
// The items are snapshotted under the lock and yielded outside it, so the
// queue may be mutated, including by the consumer, during iteration.
func (q *Queue[T, P]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		q.mu.Lock()
		snapshot := make([]T, 0, q.engine.Len())
		for _, n := range q.none {
			snapshot = append(snapshot, n.Value())
		}
		for _, bucket := range q.items {
			for _, n := range bucket {
				snapshot = append(snapshot, n.Value())
			}
		}
		q.mu.Unlock()

		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// Validate cross-checks the identity structures against the engine: every
// mapped node must be enqueued, no bucket may be empty, the mapped node
// count must equal the engine size, and the engine itself must pass its
// structural audit. O(n); intended for tests and diagnostics.
func (q *Queue[T, P]) Validate() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	mapped := len(q.none)
	for _, n := range q.none {
		if !q.engine.Contains(n) {
			return errors.New("prioq: sentinel bucket references a node missing from the engine")
		}
	}
	for item, bucket := range q.items {
		if len(bucket) == 0 {
			return fmt.Errorf("prioq: empty bucket left behind for item %v", item)
		}
		for _, n := range bucket {
			if !q.engine.Contains(n) {
				return fmt.Errorf("prioq: item %v references a node missing from the engine", item)
			}
		}
		mapped += len(bucket)
	}
	if mapped != q.engine.Len() {
		return fmt.Errorf("prioq: identity map tracks %d nodes, engine holds %d", mapped, q.engine.Len())
	}
	return q.engine.Validate()
}

// enqueue wraps item in a fresh node, pushes it and records it in the
// identity structures. Caller must hold q.mu.
func (q *Queue[T, P]) enqueue(item T, priority P) {
	if q.engine.Len() == q.engine.Cap() {
		_ = q.engine.Grow(q.engine.Cap()*2 + 1)
	}
	n := heap.NewNode[T, P](item)
	_ = q.engine.Push(n, priority)
	if q.isNone(item) {
		q.none = append(q.none, n)
		return
	}
	q.items[item] = append(q.items[item], n)
}

// dequeue pops the engine minimum and forgets it. Caller must hold q.mu
// and have checked the queue is non-empty.
func (q *Queue[T, P]) dequeue() T {
	n, _ := q.engine.Pop()
	q.forget(n)
	return n.Value()
}

// detach removes a specific node from both the engine and the identity
// structures. Caller must hold q.mu.
func (q *Queue[T, P]) detach(n *heap.Node[T, P]) {
	_ = q.engine.Remove(n)
	q.forget(n)
}

// first returns the oldest-enqueued node holding item. Caller must hold
// q.mu.
func (q *Queue[T, P]) first(item T) (*heap.Node[T, P], bool) {
	bucket := q.bucket(item)
	if len(bucket) == 0 {
		return nil, false
	}
	return bucket[0], true
}

// bucket returns the node bucket for item, routing "no value" items to
// the dedicated sentinel bucket. Caller must hold q.mu.
func (q *Queue[T, P]) bucket(item T) []*heap.Node[T, P] {
	if q.isNone(item) {
		return q.none
	}
	return q.items[item]
}

// forget drops n from its identity bucket, deleting the bucket when it
// empties. Caller must hold q.mu.
func (q *Queue[T, P]) forget(n *heap.Node[T, P]) {
	item := n.Value()
	if q.isNone(item) {
		q.none = dropNode(q.none, n)
		return
	}
	bucket := dropNode(q.items[item], n)
	if len(bucket) == 0 {
		delete(q.items, item)
		return
	}
	q.items[item] = bucket
}

// dropNode removes the first occurrence of n from bucket, preserving the
// order of the rest.
func dropNode[T comparable, P any](bucket []*heap.Node[T, P], n *heap.Node[T, P]) []*heap.Node[T, P] {
	for i, m := range bucket {
		if m == n {
			return append(bucket[:i], bucket[i+1:]...)
		}
	}
	return bucket
}
