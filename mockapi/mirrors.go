// Package mockapi provides a very basic mock mirror API for examples and demos.
// It's intentionally kept public to enable running and experimenting with examples in the Go Playground.
// Lookups are deterministic so that examples stay reproducible, but latency is random.
package mockapi

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"
)

var regions = []string{"us-east", "us-west", "eu-central", "eu-north", "ap-south", "ap-east"}

// Mirrors returns the hostnames of the mirror fleet.
func Mirrors() []string {
	const perRegion = 2

	res := make([]string, 0, len(regions)*perRegion)
	for _, region := range regions {
		for i := 1; i <= perRegion; i++ {
			res = append(res, fmt.Sprintf("mirror-%02d.%s.example.com", i, region))
		}
	}
	return res
}

// HasObject reports whether the given mirror stores the object with the given
// key. It simulates a slow remote call: it sleeps for a random duration and
// respects context cancellation.
func HasObject(ctx context.Context, mirror, key string) (bool, error) {
	randomSleep(ctx, 500*time.Millisecond)
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if mirror == "" {
		return false, fmt.Errorf("mirror is empty")
	}
	if key == "" {
		return false, fmt.Errorf("key is empty")
	}

	// Each mirror deterministically stores about a third of all objects.
	return hash(mirror, key)%3 == 0, nil
}

// PingMirror simulates a health check against a mirror. A deterministic subset
// of the fleet is always unhealthy.
func PingMirror(ctx context.Context, mirror string) error {
	randomSleep(ctx, 200*time.Millisecond)
	if err := ctx.Err(); err != nil {
		return err
	}

	if hash(mirror, "health")%10 == 0 {
		return fmt.Errorf("mirror %s is not responding", mirror)
	}
	return nil
}

func hash(input ...any) int {
	hasher := fnv.New32()
	fmt.Fprintln(hasher, input...)
	return int(hasher.Sum32())
}

func randomSleep(ctx context.Context, max time.Duration) {
	dur := time.Duration(rand.Intn(int(max)))
	t := time.NewTimer(dur)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
