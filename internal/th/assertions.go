// Package th provides basic test helpers.
package th

import (
	"errors"
	"testing"
	"time"
)

func ExpectValue[A comparable](t *testing.T, actual A, expected A) {
	t.Helper()
	if expected != actual {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

func ExpectSlice[A comparable](t *testing.T, actual []A, expected []A) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("expected %v, got %v", expected, actual)
		return
	}

	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("expected %v, got %v", expected, actual)
			return
		}
	}
}

func ExpectNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error '%v'", err)
	}
}

func ExpectErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error '%v', got nil", target)
		return
	}

	if !errors.Is(err, target) {
		t.Errorf("expected error '%v', got '%v'", target, err)
	}
}

// ExpectNotHang fails the test if f does not return within waitFor.
func ExpectNotHang(t *testing.T, waitFor time.Duration, f func()) {
	t.Helper()
	done := make(chan struct{})

	go func() {
		defer close(done)
		f()
	}()

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Errorf("test hanged")
	}
}

// ExpectDrained fails the test unless counter() reaches zero within waitFor.
// It is used to verify that no instrumented call remains in flight after an
// operation returns.
func ExpectDrained(t *testing.T, waitFor time.Duration, counter func() int64) {
	t.Helper()

	deadline := time.Now().Add(waitFor)
	for {
		if counter() == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Errorf("expected 0 calls in flight after %v, got %d", waitFor, counter())
			return
		}
		time.Sleep(1 * time.Millisecond)
	}
}
