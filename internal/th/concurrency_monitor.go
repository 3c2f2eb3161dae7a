package th

import (
	"sync"
	"time"
)

// ConcurrencyMonitor measures how many goroutines were active at the same
// time. Each monitored goroutine calls Enter at the start of its work and
// Exit at the end.
//
// To capture true peaks rather than whatever the scheduler happens to
// interleave, Enter parks the caller until the level has stopped changing for
// the configured window. Goroutines that could run together are therefore
// forced to overlap at least once, after which the monitor gets out of the
// way and never blocks again.
type ConcurrencyMonitor struct {
	mu      sync.Mutex
	current int
	max     int

	window  time.Duration
	settled chan struct{} // closed once no new goroutine has entered for a full window
	done    bool
	timer   *time.Timer
}

func NewConcurrencyMonitor(window time.Duration) *ConcurrencyMonitor {
	m := &ConcurrencyMonitor{
		window:  window,
		settled: make(chan struct{}),
	}

	m.timer = time.AfterFunc(1*time.Hour, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if !m.done {
			m.done = true
			close(m.settled)
		}
	})

	return m
}

func (m *ConcurrencyMonitor) Enter() {
	m.mu.Lock()

	m.current++
	if m.max < m.current {
		m.max = m.current
	}
	if !m.done {
		m.timer.Reset(m.window)
	}

	m.mu.Unlock()

	<-m.settled
}

// Exit can only happen after the monitor has settled (Enter does not return
// earlier), so it never needs to touch the timer.
func (m *ConcurrencyMonitor) Exit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current--
}

func (m *ConcurrencyMonitor) Max() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.max
}
