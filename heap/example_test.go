package heap_test

import (
	"fmt"

	"github.com/davidvella/prioq/heap"
)

// ExampleQueue demonstrates basic push and pop ordering.
func ExampleQueue() {
	q := heap.NewOrdered[string, int](4)

	jobs := map[string]int{
		"compile": 2,
		"link":    3,
		"parse":   1,
	}
	for name, pri := range jobs {
		if err := q.Push(heap.NewNode[string, int](name), pri); err != nil {
			fmt.Println(err)
			return
		}
	}

	for q.Len() > 0 {
		n, _ := q.Pop()
		fmt.Printf("%s (%d)\n", n.Value(), n.Priority())
	}

	// Output:
	// parse (1)
	// compile (2)
	// link (3)
}

// ExampleQueue_update demonstrates re-prioritising an arbitrary node.
func ExampleQueue_update() {
	q := heap.NewOrdered[string, int](4)

	low := heap.NewNode[string, int]("low")
	high := heap.NewNode[string, int]("high")
	_ = q.Push(low, 10)
	_ = q.Push(high, 1)

	// Promote the low-priority node past the current minimum.
	_ = q.Update(low, 0)

	n, _ := q.Pop()
	fmt.Println(n.Value())

	// Output:
	// low
}

// ExampleQueue_grow demonstrates growing a full queue.
func ExampleQueue_grow() {
	q := heap.NewOrdered[int, int](1)
	_ = q.Push(heap.NewNode[int, int](1), 1)

	if q.Len() == q.Cap() {
		_ = q.Grow(q.Cap()*2 + 1)
	}
	err := q.Push(heap.NewNode[int, int](2), 2)

	fmt.Println(q.Len(), q.Cap(), err)

	// Output:
	// 2 3 <nil>
}

// ExampleWithStableOrder demonstrates first-in-first-out ordering among
// equal priorities.
func ExampleWithStableOrder() {
	q := heap.NewOrdered[string, int](4, heap.WithStableOrder())

	_ = q.Push(heap.NewNode[string, int]("first"), 5)
	_ = q.Push(heap.NewNode[string, int]("second"), 5)
	_ = q.Push(heap.NewNode[string, int]("third"), 5)

	for q.Len() > 0 {
		n, _ := q.Pop()
		fmt.Println(n.Value())
	}

	// Output:
	// first
	// second
	// third
}
