// Package clock abstracts the time operations the gateway depends on so
// heartbeat and reconnect timing can be driven deterministically in tests.
//
// Production code uses Real(); tests use Fake() and call Advance.
package clock

import "time"

type Clock interface {
	Now() time.Time
	// After returns a channel that receives the current time once d has
	// elapsed. If d <= 0 the channel receives immediately.
	After(d time.Duration) <-chan time.Time
	// NewTicker panics if d <= 0, matching time.NewTicker.
	NewTicker(d time.Duration) *Ticker
}

// Ticker delivers ticks on C, which has capacity 1. Ticks are dropped
// when the consumer falls behind.
type Ticker struct {
	C <-chan time.Time

	stopFunc func()
}

// Stop turns off the ticker. It does not close C.
func (t *Ticker) Stop() { t.stopFunc() }

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

func (realClock) NewTicker(d time.Duration) *Ticker {
	ticker := time.NewTicker(d)
	return &Ticker{
		C:        ticker.C,
		stopFunc: ticker.Stop,
	}
}
