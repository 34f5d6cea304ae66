package heap

// options defines all configuration options for a queue.
type options struct {
	stable bool // break priority ties by insertion order
	checks bool // validate preconditions and return descriptive errors
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithStableOrder makes the queue break priority ties by insertion order,
// so nodes pushed with equal priorities pop first-in-first-out. Plain heap
// mechanics give no ordering guarantee among equal priorities.
func WithStableOrder() Option {
	return func(o *options) {
		o.stable = true
	}
}

// Unchecked disables precondition checking. Operations stop returning
// errors for contract violations such as popping an empty queue or pushing
// past capacity; violating a contract in this mode yields undefined
// behaviour. Intended for callers that enforce the contracts themselves
// and want the checks off the hot path.
func Unchecked() Option {
	return func(o *options) {
		o.checks = false
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		stable: false,
		checks: true,
	}
}
