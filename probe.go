package probe

import (
	"context"
	"errors"
)

// Predicate reports whether an item satisfies some condition. It is typically
// slow or network-bound. Implementations must observe ctx and return promptly
// once it is cancelled; the result of a cancelled call is ignored.
type Predicate[A any] func(ctx context.Context, item A) bool

// Options configures a single evaluation run.
type Options struct {
	// MaxConcurrency is the number of goroutines that invoke the predicate.
	// It must be positive and is clamped to the number of items, so a run
	// never spawns more workers than there is work.
	MaxConcurrency int

	// RequestsPerSecond caps how fast items are admitted for evaluation,
	// shared across all workers. Zero disables pacing. Negative is invalid.
	RequestsPerSecond float64
}

// Configuration errors, reported before any evaluation starts.
var (
	ErrNilPredicate       = errors.New("probe: predicate is nil")
	ErrInvalidConcurrency = errors.New("probe: max concurrency must be positive")
	ErrInvalidRate        = errors.New("probe: requests per second must not be negative")
)

func (o Options) validate() error {
	if o.MaxConcurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if o.RequestsPerSecond < 0 {
		return ErrInvalidRate
	}
	return nil
}

// Any reports whether at least one item satisfies pred. It evaluates items
// concurrently using opts.MaxConcurrency goroutines and returns as soon as a
// satisfying item is found, without waiting for the remaining evaluations.
//
// On early return all pending and in-flight evaluations are cancelled via the
// context passed to pred. By the time Any returns, no started goroutine keeps
// running, provided pred honors its context.
//
// An empty items slice yields false without starting anything. Cancellation
// of ctx is not an error: the run shuts down silently and Any returns false.
func Any[A any](ctx context.Context, items []A, opts Options, pred Predicate[A]) (bool, error) {
	_, found, err := Find(ctx, items, opts, pred)
	return found, err
}

// All reports whether every item satisfies pred. It is the dual of [Any]:
// items are evaluated concurrently and All returns false as soon as a
// non-satisfying item is found. An empty items slice yields true, and so does
// a run cancelled before any non-satisfying item is seen.
func All[A any](ctx context.Context, items []A, opts Options, pred Predicate[A]) (bool, error) {
	if pred == nil {
		return false, ErrNilPredicate
	}

	_, found, err := Find(ctx, items, opts, func(ctx context.Context, item A) bool {
		// Contain panics before inverting, so a panicking call counts as
		// "does not satisfy" here just like in Any.
		ok, _ := invoke(ctx, pred, item)
		return !ok
	})
	return !found, err
}

// Find is like [Any], but also returns the satisfying item itself. Which of
// several satisfying items is returned is not deterministic: results are
// observed in completion order, not input order.
//
// When no item satisfies pred, or the run is cancelled before a satisfying
// item is seen, Find returns the zero value and false.
func Find[A any](ctx context.Context, items []A, opts Options, pred Predicate[A]) (A, bool, error) {
	var zero A

	if pred == nil {
		return zero, false, ErrNilPredicate
	}
	if err := opts.validate(); err != nil {
		return zero, false, err
	}
	if len(items) == 0 {
		return zero, false, nil
	}
	if ctx.Err() != nil {
		// Already cancelled: a silent shutdown with zero startup.
		return zero, false, nil
	}

	n := min(opts.MaxConcurrency, len(items))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // release the feeder, the workers and in-flight predicate calls on every return path

	// The queue holds at most one pending item per worker; the results
	// channel can absorb a verdict for every item, so workers finishing
	// after an early return never block on publish.
	queue := make(chan A, n)
	results := make(chan verdict[A], len(items))

	go feed(ctx, queue, items, newLimiter(opts.RequestsPerSecond))
	startPool(ctx, queue, results, n, pred)

	// The pool closes results once every worker has exited, so this loop
	// terminates even if cancellation cuts the verdict stream short.
	for {
		select {
		case v, ok := <-results:
			if !ok {
				return zero, false, nil
			}
			if v.ok {
				return v.item, true, nil
			}
		case <-ctx.Done():
			// Verdicts published before the cancellation are already
			// buffered; observe them instead of dropping a positive one.
			for {
				select {
				case v, ok := <-results:
					if !ok {
						return zero, false, nil
					}
					if v.ok {
						return v.item, true, nil
					}
				default:
					return zero, false, nil
				}
			}
		}
	}
}
