package probe

import (
	"context"

	"golang.org/x/time/rate"
)

// feed admits items into the queue one at a time, pacing each admission
// against lim. It stops immediately, leaving the remaining items unadmitted,
// once ctx is cancelled. Either way it closes the queue so the workers ranging
// over it drain out and exit.
func feed[A any](ctx context.Context, queue chan<- A, items []A, lim *rate.Limiter) {
	defer close(queue)

	for _, item := range items {
		if lim != nil {
			// Wait races the next token against cancellation.
			if err := lim.Wait(ctx); err != nil {
				return
			}
		}

		select {
		case queue <- item:
		case <-ctx.Done():
			return
		}
	}
}
