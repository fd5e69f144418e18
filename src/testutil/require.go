// Package testutil holds channel helpers with a wall-clock safety valve,
// so a broken test fails instead of hanging.
package testutil

import (
	"fmt"
	"time"
)

// T is the subset of testing.TB the helpers use.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// DefaultTimeout bounds every wait in the test suite.
const DefaultTimeout = 5 * time.Second

// RequireReceive reads one value from ch within DefaultTimeout, or fails
// the test.
func RequireReceive[V any](t T, ch <-chan V, msgAndArgs ...any) V {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed without sending a value: %s", formatMessage(msgAndArgs))
		}
		return v
	case <-time.After(DefaultTimeout):
		t.Fatalf("timed out after %v: %s", DefaultTimeout, formatMessage(msgAndArgs))
	}
	panic("unreachable")
}

// RequireNoReceive fails the test if ch yields a value within wait.
func RequireNoReceive[V any](t T, ch <-chan V, wait time.Duration, msgAndArgs ...any) {
	t.Helper()
	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("unexpected value %v: %s", v, formatMessage(msgAndArgs))
		}
	case <-time.After(wait):
	}
}

// RequireClosed waits for ch to be closed, discarding any values sent
// before the close.
func RequireClosed[V any](t T, ch <-chan V, msgAndArgs ...any) {
	t.Helper()
	deadline := time.After(DefaultTimeout)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("timed out after %v waiting for close: %s", DefaultTimeout, formatMessage(msgAndArgs))
		}
	}
}

func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
