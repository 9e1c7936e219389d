package notify

import (
	"testing"
	"time"
)

// testClock is a manually advanced clock.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestChannel() (*Channel, *testClock) {
	clock := &testClock{t: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)}
	return NewWithClock(clock.Now), clock
}

func TestChannel_ShowAndCurrent(t *testing.T) {
	c, _ := newTestChannel()

	if c.Current() != nil {
		t.Fatal("expected empty channel initially")
	}

	c.Show("Invite sent! 💌", Success)

	n := c.Current()
	if n == nil {
		t.Fatal("expected a notification")
	}
	if n.Message != "Invite sent! 💌" || n.Severity != Success {
		t.Errorf("got %+v", n)
	}
}

func TestChannel_LastCallWins(t *testing.T) {
	c, _ := newTestChannel()

	c.Show("first", Info)
	c.Show("second", Error)

	n := c.Current()
	if n == nil || n.Message != "second" || n.Severity != Error {
		t.Errorf("got %+v, want the replacing notification", n)
	}
}

func TestChannel_AutoExpires(t *testing.T) {
	c, clock := newTestChannel()
	c.Show("transient", Info)

	clock.Advance(TTL - time.Millisecond)
	if c.Current() == nil {
		t.Error("notification expired early")
	}

	clock.Advance(2 * time.Millisecond)
	if c.Current() != nil {
		t.Error("notification should have expired")
	}
}

func TestChannel_DismissIsIdempotent(t *testing.T) {
	c, _ := newTestChannel()
	c.Show("bye", Info)

	c.Dismiss()
	if c.Current() != nil {
		t.Error("expected empty channel after dismiss")
	}

	// Dismissing again, or with nothing shown, must not panic or revive
	// anything.
	c.Dismiss()
	if c.Current() != nil {
		t.Error("expected channel to stay empty")
	}
}

func TestChannel_ShowAfterExpiryStartsFreshTTL(t *testing.T) {
	c, clock := newTestChannel()
	c.Show("one", Info)
	clock.Advance(TTL + time.Second)

	c.Show("two", Success)
	clock.Advance(TTL / 2)

	n := c.Current()
	if n == nil || n.Message != "two" {
		t.Errorf("got %+v, want the fresh notification still visible", n)
	}
}
