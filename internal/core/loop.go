// Package core holds the low-level goroutine plumbing shared by the public
// probe operations.
package core

import "sync"

// Loop processes items from the input channel concurrently using n goroutines.
// The function f reports whether its goroutine should keep consuming: when f
// returns false, that goroutine stops pulling further items while the others
// continue. If done is not nil, it is closed after all goroutines have exited,
// which makes it usable as an "all workers finished" signal.
func Loop[A, B any](in <-chan A, done chan<- B, n int, f func(A) bool) {
	if n == 1 {
		go func() {
			if done != nil {
				defer close(done)
			}

			for a := range in {
				if !f(a) {
					return
				}
			}
		}()
		return
	}

	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for a := range in {
				if !f(a) {
					return
				}
			}
		}()
	}

	if done != nil {
		go func() {
			wg.Wait()
			close(done)
		}()
	}
}
