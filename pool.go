package probe

import (
	"context"

	"github.com/probekit/probe/internal/core"
)

// verdict is a single worker's answer for a single item.
type verdict[A any] struct {
	item A
	ok   bool
}

// startPool runs n workers over the queue. Each worker pulls items until the
// queue is closed, invokes the predicate and publishes a verdict. The results
// channel is closed once every worker has exited.
//
// Workers do not watch ctx while pulling: the feeder closes the queue on
// cancellation, which ends the pull loop naturally. They do check it between
// items, so no new predicate call starts after the run is cancelled; the
// in-flight call receives ctx and is responsible for its own prompt exit.
func startPool[A any](ctx context.Context, queue <-chan A, results chan<- verdict[A], n int, pred Predicate[A]) {
	core.Loop(queue, results, n, func(item A) bool {
		if ctx.Err() != nil {
			return false // the run is over, nobody needs this verdict
		}

		ok, panicked := invoke(ctx, pred, item)

		// Never blocks: results is sized to hold a verdict for every item.
		results <- verdict[A]{item: item, ok: ok}

		// a worker whose predicate panicked stops consuming; its siblings keep going
		return !panicked
	})
}

// invoke calls the predicate, converting a panic into a false verdict.
func invoke[A any](ctx context.Context, pred Predicate[A], item A) (ok, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			ok, panicked = false, true
		}
	}()

	return pred(ctx, item), false
}
