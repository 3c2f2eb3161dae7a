package probe

import "golang.org/x/time/rate"

// newLimiter builds the admission limiter for a run. With burst 1 the first
// admission is immediate and each subsequent one waits a full 1/rps interval.
// A nil limiter means pacing is disabled.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}
