package probe

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/probekit/probe/internal/th"
)

func TestStartPool(t *testing.T) {
	t.Run("publishes one verdict per item and closes results", func(t *testing.T) {
		items := []string{"red", "green", "blue", "yellow"}

		queue := make(chan string, len(items))
		results := make(chan verdict[string], len(items))
		th.Send(queue, items...)
		close(queue)

		startPool(context.Background(), queue, results, 2, func(ctx context.Context, s string) bool {
			return s == "blue"
		})

		verdicts := map[string]bool{}
		th.ExpectNotHang(t, 5*time.Second, func() {
			for v := range results {
				verdicts[v.item] = v.ok
			}
		})

		th.ExpectValue(t, len(verdicts), len(items))
		th.ExpectValue(t, verdicts["red"], false)
		th.ExpectValue(t, verdicts["green"], false)
		th.ExpectValue(t, verdicts["blue"], true)
		th.ExpectValue(t, verdicts["yellow"], false)
	})

	t.Run("a panicking predicate does not take down the pool", func(t *testing.T) {
		items := []string{"boom", "a", "b", "c", "d"}

		queue := make(chan string, len(items))
		results := make(chan verdict[string], len(items))
		th.Send(queue, items...)
		close(queue)

		startPool(context.Background(), queue, results, 2, func(ctx context.Context, s string) bool {
			if s == "boom" {
				panic("predicate exploded")
			}
			return true
		})

		verdicts := map[string]bool{}
		th.ExpectNotHang(t, 5*time.Second, func() {
			for v := range results {
				verdicts[v.item] = v.ok
			}
		})

		// The panicking item counts as false, every other item is still
		// processed by the surviving worker.
		th.ExpectValue(t, len(verdicts), len(items))
		th.ExpectValue(t, verdicts["boom"], false)
		for _, s := range []string{"a", "b", "c", "d"} {
			th.ExpectValue(t, verdicts[s], true)
		}
	})

	t.Run("workers stop pulling once the run is cancelled", func(t *testing.T) {
		items := th.Range(0, 10)

		queue := make(chan int, len(items))
		results := make(chan verdict[int], len(items))
		th.Send(queue, items...)
		close(queue)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls int64
		startPool(ctx, queue, results, 2, func(ctx context.Context, x int) bool {
			atomic.AddInt64(&calls, 1)
			return true
		})

		th.ExpectNotHang(t, 5*time.Second, func() {
			for range results {
			}
		})
		th.ExpectValue(t, atomic.LoadInt64(&calls), 0)
	})

	t.Run("workers stop when the queue is closed", func(t *testing.T) {
		queue := make(chan int)
		results := make(chan verdict[int], 1)

		var calls int64
		startPool(context.Background(), queue, results, 3, func(ctx context.Context, x int) bool {
			atomic.AddInt64(&calls, 1)
			return false
		})

		close(queue)

		th.ExpectNotHang(t, 5*time.Second, func() {
			for range results {
			}
		})
		th.ExpectValue(t, atomic.LoadInt64(&calls), 0)
	})
}
