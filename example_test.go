package prioq_test

import (
	"fmt"

	"github.com/davidvella/prioq"
)

// ExampleQueue demonstrates basic enqueue and dequeue ordering.
func ExampleQueue() {
	// Smaller priorities dequeue first.
	q := prioq.New[string, int](nil)

	q.Enqueue("write docs", 3)
	q.Enqueue("fix bug", 1)
	q.Enqueue("review", 2)

	for item, ok := q.TryDequeue(); ok; item, ok = q.TryDequeue() {
		fmt.Println(item)
	}

	// Output:
	// fix bug
	// review
	// write docs
}

// ExampleQueue_updatePriority demonstrates re-prioritising an item in
// place.
func ExampleQueue_updatePriority() {
	q := prioq.New[string, int](nil)

	q.Enqueue("backup", 10)
	q.Enqueue("serve traffic", 1)

	// The disk is filling up.
	if err := q.UpdatePriority("backup", 0); err != nil {
		fmt.Println(err)
		return
	}

	first, _ := q.First()
	fmt.Println(first)

	// Output:
	// backup
}

// ExampleQueue_enqueueWithoutDuplicates demonstrates duplicate-refusing
// insertion.
func ExampleQueue_enqueueWithoutDuplicates() {
	q := prioq.New[string, int](nil)

	fmt.Println(q.EnqueueWithoutDuplicates("job", 3))
	fmt.Println(q.EnqueueWithoutDuplicates("job", 7))

	p, _ := q.GetPriority("job")
	fmt.Println(q.Len(), p)

	// Output:
	// true
	// false
	// 1 3
}

// ExampleQueue_customComparator demonstrates a max-heap over a custom
// priority type.
func ExampleQueue_customComparator() {
	type urgency struct {
		level int
	}

	q := prioq.NewWithComparator[string, urgency](func(a, b urgency) bool {
		return a.level > b.level
	}, nil)

	q.Enqueue("minor", urgency{level: 1})
	q.Enqueue("critical", urgency{level: 9})

	item, _ := q.Dequeue()
	fmt.Println(item)

	// Output:
	// critical
}
