package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeAfter(t *testing.T) {
	c := Fake(epoch)
	ch := c.After(5 * time.Second)

	c.Advance(4 * time.Second)
	select {
	case <-ch:
		t.Fatal("After fired before its deadline")
	default:
	}

	c.Advance(time.Second)
	select {
	case got := <-ch:
		if !got.Equal(epoch.Add(5 * time.Second)) {
			t.Errorf("fired at %v, want %v", got, epoch.Add(5*time.Second))
		}
	default:
		t.Fatal("After did not fire at its deadline")
	}
	if n := c.PendingCount(); n != 0 {
		t.Errorf("PendingCount = %d after one-shot fired, want 0", n)
	}
}

func TestFakeAfterNonPositive(t *testing.T) {
	c := Fake(epoch)
	select {
	case <-c.After(0):
	default:
		t.Fatal("After(0) should deliver immediately")
	}
}

func TestFakeTicker(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Second)

	for i := 0; i < 3; i++ {
		c.Advance(time.Second)
		select {
		case <-ticker.C:
		default:
			t.Fatalf("tick %d not delivered", i)
		}
	}

	ticker.Stop()
	if n := c.PendingCount(); n != 0 {
		t.Errorf("PendingCount = %d after Stop, want 0", n)
	}
	c.Advance(time.Second)
	select {
	case <-ticker.C:
		t.Fatal("stopped ticker delivered a tick")
	default:
	}
}

func TestFakeTickerDropsOverflow(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Second)

	c.Advance(5 * time.Second)
	<-ticker.C
	select {
	case <-ticker.C:
		t.Fatal("expected overflow ticks to be dropped")
	default:
	}
}

func TestWaitForTimers(t *testing.T) {
	c := Fake(epoch)
	done := make(chan struct{})
	go func() {
		<-c.After(time.Minute)
		close(done)
	}()

	c.WaitForTimers(1)
	c.Advance(time.Minute)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("goroutine waiting on After was not released")
	}
}
