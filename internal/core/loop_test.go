package core

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/probekit/probe/internal/th"
)

func TestLoop(t *testing.T) {
	for _, n := range []int{1, 4} {
		t.Run(th.Name("processes all items", n), func(t *testing.T) {
			in := make(chan int, 100)
			th.Send(in, th.Range(0, 100)...)
			close(in)

			done := make(chan struct{})

			var cnt int64
			Loop(in, done, n, func(x int) bool {
				atomic.AddInt64(&cnt, 1)
				return true
			})

			th.ExpectNotHang(t, 5*time.Second, func() { <-done })
			th.ExpectValue(t, atomic.LoadInt64(&cnt), 100)
		})
	}

	t.Run("stopping one goroutine does not stop the others", func(t *testing.T) {
		in := make(chan int, 50)
		th.Send(in, th.Range(0, 50)...)
		close(in)

		done := make(chan struct{})

		var cnt int64
		Loop(in, done, 3, func(x int) bool {
			atomic.AddInt64(&cnt, 1)
			return x != 0 // the goroutine that draws item 0 stops
		})

		th.ExpectNotHang(t, 5*time.Second, func() { <-done })

		// item 0 is still counted, and the two surviving goroutines
		// consume everything else
		th.ExpectValue(t, atomic.LoadInt64(&cnt), 50)
	})

	t.Run("sequential when n is 1", func(t *testing.T) {
		in := make(chan int, 10)
		th.Send(in, th.Range(0, 10)...)
		close(in)

		done := make(chan struct{})

		var got []int
		Loop(in, done, 1, func(x int) bool {
			got = append(got, x)
			return x < 5 // stop after item 5
		})

		th.ExpectNotHang(t, 5*time.Second, func() { <-done })
		th.ExpectSlice(t, got, th.Range(0, 6))
	})
}
