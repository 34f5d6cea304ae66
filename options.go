package prioq

// defaultCapacity is the initial engine capacity when none is configured.
const defaultCapacity = 10

// Options configures the behaviour of a Queue. The zero value (or a nil
// pointer) selects the defaults.
type Options[T comparable] struct {
	// Capacity is the initial capacity of the underlying engine. The
	// queue grows the engine automatically as items are enqueued; a
	// larger initial capacity avoids early regrowth. Zero or negative
	// selects the default.
	Capacity int

	// None reports whether an item denotes the absent "no value" item.
	// Such items are tracked in a dedicated bucket instead of the
	// identity map, since an equality notion cannot generally tell two
	// absent values apart. Defaults to comparing against the zero value
	// of T.
	None func(T) bool
}
