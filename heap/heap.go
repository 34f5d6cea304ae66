package heap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Common errors returned by queue operations when precondition checking is
// enabled. With the Unchecked option these conditions are not detected and
// the resulting behaviour is undefined.
var (
	ErrNilNode         = errors.New("heap: node is nil")
	ErrEmpty           = errors.New("heap: queue is empty")
	ErrFull            = errors.New("heap: queue is full")
	ErrNotEnqueued     = errors.New("heap: node is not enqueued in this queue")
	ErrAlreadyEnqueued = errors.New("heap: node is already enqueued")
	ErrWrongQueue      = errors.New("heap: node was used in another queue and was not reset")
	ErrCapacity        = errors.New("heap: new capacity is smaller than the current size")
)

// Node is the intrusive unit of the queue: it carries the caller's value
// together with the priority and position bookkeeping the queue maintains.
// A node may be enqueued in at most one queue at a time, and the queue is
// the sole writer of its bookkeeping fields while it is enqueued.
type Node[T, P any] struct {
	value    T
	priority P
	index    int    // 1-based slot in the backing array; 0 when not enqueued
	seq      uint64 // insertion sequence, secondary key under stable ordering
	owner    *Queue[T, P]
}

// NewNode creates a detached node wrapping value, ready to be pushed.
func NewNode[T, P any](value T) *Node[T, P] {
	return &Node[T, P]{value: value}
}

// Value returns the value the node was created with.
func (n *Node[T, P]) Value() T { return n.value }

// Priority returns the priority most recently assigned by Push or Update.
func (n *Node[T, P]) Priority() P { return n.priority }

// Queue is a binary min-heap over intrusive nodes. Because every node
// tracks its own position, membership tests are O(1) and arbitrary nodes
// can be removed or re-prioritised in O(log n), not just the minimum.
//
// The queue has a fixed capacity and never grows itself; callers detect a
// full queue with Len and Cap and call Grow before pushing. Queue performs
// no locking and is not safe for concurrent use.
type Queue[T, P any] struct {
	nodes  []*Node[T, P] // 1-indexed; nodes[0] is never used
	count  int
	seq    uint64
	lessFn func(a, b P) bool
	stable bool
	checks bool
}

// New creates a queue with the given capacity and priority comparator.
// The comparator returns true when a should be dequeued before b.
func New[T, P any](capacity int, less func(a, b P) bool, opts ...Option) *Queue[T, P] {
	if capacity < 0 {
		capacity = 0
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[T, P]{
		nodes:  make([]*Node[T, P], capacity+1),
		lessFn: less,
		stable: o.stable,
		checks: o.checks,
	}
}

// NewOrdered creates a queue over a naturally ordered priority type;
// smaller priorities dequeue first.
func NewOrdered[T any, P constraints.Ordered](capacity int, opts ...Option) *Queue[T, P] {
	return New[T, P](capacity, func(a, b P) bool { return a < b }, opts...)
}

// Len returns the number of nodes currently enqueued.
func (q *Queue[T, P]) Len() int { return q.count }

// Cap returns the maximum number of nodes the queue can hold before Grow
// must be called.
func (q *Queue[T, P]) Cap() int { return len(q.nodes) - 1 }

// Contains reports whether n is currently enqueued in this queue. O(1):
// the slot recorded on the node must hold exactly that node, which guards
// against stale indices on nodes that were removed or that belong to
// another queue.
func (q *Queue[T, P]) Contains(n *Node[T, P]) bool {
	if n == nil || n.index < 1 || n.index > q.count {
		return false
	}
	return q.nodes[n.index] == n
}

// Push enqueues n with the given priority. The node must not already be
// enqueued, must not have been used in another queue without ResetNode,
// and the queue must not be full.
func (q *Queue[T, P]) Push(n *Node[T, P], priority P) error {
	if q.checks {
		if n == nil {
			return ErrNilNode
		}
		if q.count >= q.Cap() {
			return ErrFull
		}
		if q.Contains(n) {
			return ErrAlreadyEnqueued
		}
		if n.owner != nil && n.owner != q {
			return ErrWrongQueue
		}
	}
	n.priority = priority
	n.owner = q
	q.seq++
	n.seq = q.seq
	q.count++
	q.nodes[q.count] = n
	n.index = q.count
	q.up(n)
	return nil
}

// Pop removes and returns the node with the highest priority (the one that
// orders before all others).
func (q *Queue[T, P]) Pop() (*Node[T, P], error) {
	if q.checks && q.count == 0 {
		return nil, ErrEmpty
	}
	root := q.nodes[1]
	if q.count == 1 {
		q.nodes[1] = nil
		q.count = 0
		root.index = 0
		return root, nil
	}
	last := q.nodes[q.count]
	q.nodes[1] = last
	last.index = 1
	q.nodes[q.count] = nil
	q.count--
	q.down(last)
	root.index = 0
	return root, nil
}

// Peek returns the node Pop would return next, without removing it.
func (q *Queue[T, P]) Peek() (*Node[T, P], error) {
	if q.checks && q.count == 0 {
		return nil, ErrEmpty
	}
	return q.nodes[1], nil
}

// Remove removes n from the queue regardless of its position. The vacated
// slot is filled with the last node, which is then sifted up or down as
// its new neighbourhood requires.
func (q *Queue[T, P]) Remove(n *Node[T, P]) error {
	if q.checks {
		if n == nil {
			return ErrNilNode
		}
		if !q.Contains(n) {
			return ErrNotEnqueued
		}
	}
	if n.index == q.count {
		q.nodes[q.count] = nil
		q.count--
		n.index = 0
		return nil
	}
	last := q.nodes[q.count]
	q.nodes[n.index] = last
	last.index = n.index
	q.nodes[q.count] = nil
	q.count--
	q.fix(last)
	n.index = 0
	return nil
}

// Update assigns a new priority to an enqueued node and moves it to its
// correct position.
func (q *Queue[T, P]) Update(n *Node[T, P], priority P) error {
	if q.checks {
		if n == nil {
			return ErrNilNode
		}
		if !q.Contains(n) {
			return ErrNotEnqueued
		}
	}
	n.priority = priority
	q.fix(n)
	return nil
}

// Grow replaces the backing array with one of the given capacity. The new
// capacity must not be smaller than the current size.
func (q *Queue[T, P]) Grow(capacity int) error {
	if q.checks && capacity < q.count {
		return ErrCapacity
	}
	nodes := make([]*Node[T, P], capacity+1)
	copy(nodes, q.nodes[:q.count+1])
	q.nodes = nodes
	return nil
}

// Clear removes every node from the queue. Slots are nilled so removed
// values are not retained.
func (q *Queue[T, P]) Clear() {
	for i := 1; i <= q.count; i++ {
		q.nodes[i].index = 0
		q.nodes[i] = nil
	}
	q.count = 0
}

// ResetNode clears the bookkeeping on a node that was previously used in a
// queue so it can be reused, in this queue or another. The node must not be
// currently enqueued.
func (q *Queue[T, P]) ResetNode(n *Node[T, P]) error {
	if q.checks {
		if n == nil {
			return ErrNilNode
		}
		if n.owner != nil && n.owner.Contains(n) {
			return ErrAlreadyEnqueued
		}
	}
	n.index = 0
	n.seq = 0
	n.owner = nil
	return nil
}

// Validate performs a full structural audit: every enqueued node's recorded
// index must match its actual slot, every parent must order no later than
// its children, and every slot beyond the current size must be cleared.
// O(n); intended for tests and diagnostics, not the hot path.
func (q *Queue[T, P]) Validate() error {
	for i := 1; i <= q.count; i++ {
		n := q.nodes[i]
		if n == nil {
			return fmt.Errorf("heap: slot %d is empty but within size %d", i, q.count)
		}
		if n.index != i {
			return fmt.Errorf("heap: node in slot %d records index %d", i, n.index)
		}
		if left := 2 * i; left <= q.count && q.less(q.nodes[left], n) {
			return fmt.Errorf("heap: node in slot %d orders before its parent in slot %d", left, i)
		}
		if right := 2*i + 1; right <= q.count && q.less(q.nodes[right], n) {
			return fmt.Errorf("heap: node in slot %d orders before its parent in slot %d", right, i)
		}
	}
	for i := q.count + 1; i < len(q.nodes); i++ {
		if q.nodes[i] != nil {
			return fmt.Errorf("heap: slot %d beyond size %d is not cleared", i, q.count)
		}
	}
	return nil
}

// less orders nodes by priority; under stable ordering, equal priorities
// fall back to insertion sequence so equal-priority nodes dequeue
// first-in-first-out.
func (q *Queue[T, P]) less(a, b *Node[T, P]) bool {
	if q.lessFn(a.priority, b.priority) {
		return true
	}
	if q.lessFn(b.priority, a.priority) {
		return false
	}
	return q.stable && a.seq < b.seq
}

// swap exchanges two enqueued nodes between their slots.
func (q *Queue[T, P]) swap(a, b *Node[T, P]) {
	q.nodes[a.index], q.nodes[b.index] = b, a
	a.index, b.index = b.index, a.index
}

// fix re-sifts a node whose priority or position changed, in whichever
// direction its new parent requires.
func (q *Queue[T, P]) fix(n *Node[T, P]) {
	if parent := n.index >> 1; parent >= 1 && q.less(n, q.nodes[parent]) {
		q.up(n)
		return
	}
	q.down(n)
}

// up moves n toward the root until its parent orders no later than it.
func (q *Queue[T, P]) up(n *Node[T, P]) {
	for n.index > 1 {
		parent := q.nodes[n.index>>1]
		if !q.less(n, parent) {
			break
		}
		q.swap(n, parent)
	}
}

// down moves n toward the leaves until neither child orders before it.
func (q *Queue[T, P]) down(n *Node[T, P]) {
	for {
		smallest := n
		if left := n.index * 2; left <= q.count && q.less(q.nodes[left], smallest) {
			smallest = q.nodes[left]
		}
		if right := n.index*2 + 1; right <= q.count && q.less(q.nodes[right], smallest) {
			smallest = q.nodes[right]
		}
		if smallest == n {
			return
		}
		q.swap(n, smallest)
	}
}
