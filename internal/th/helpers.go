package th

import (
	"fmt"
	"strings"
	"sync"
)

// Range returns the integers from start (inclusive) to end (exclusive).
func Range(start, end int) []int {
	res := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		res = append(res, i)
	}
	return res
}

func Send[T any](ch chan<- T, items ...T) {
	for _, item := range items {
		ch <- item
	}
}

func DoConcurrentlyN(n int, f func(i int)) {
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(i)
		}()
	}

	wg.Wait()
}

// Name generates a test name.
// Works the same way as fmt.Sprint, but adds spaces between all arguments.
func Name(args ...any) string {
	res := fmt.Sprintln(args...)
	return strings.TrimSpace(res)
}
