// Package notify holds the single transient notification shown to the user.
//
// There is no queue: Show replaces whatever is on display, last call wins.
// Expiry is a timestamp on the value rather than a timer callback, so the
// channel can be driven and tested by advancing an injected clock.
package notify

import (
	"sync"
	"time"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// TTL is how long a notification stays visible unless dismissed earlier.
const TTL = 3 * time.Second

// Notification is one transient user-facing message.
type Notification struct {
	Message   string
	Severity  Severity
	ExpiresAt time.Time
}

// Channel is the process-wide single-slot notification state.
type Channel struct {
	mu      sync.Mutex
	current *Notification
	now     func() time.Time
}

// New creates a channel on the real clock.
func New() *Channel {
	return NewWithClock(time.Now)
}

// NewWithClock creates a channel whose expiry checks use now. Tests pass a
// controllable clock.
func NewWithClock(now func() time.Time) *Channel {
	return &Channel{now: now}
}

// Show replaces the current notification unconditionally.
func (c *Channel) Show(message string, severity Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &Notification{
		Message:   message,
		Severity:  severity,
		ExpiresAt: c.now().Add(TTL),
	}
}

// Current returns the active notification, or nil when there is none or the
// last one has expired.
func (c *Channel) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil || !c.now().Before(c.current.ExpiresAt) {
		c.current = nil
		return nil
	}
	n := *c.current
	return &n
}

// Dismiss clears the slot. Dismissing an empty or expired slot is a no-op.
func (c *Channel) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}
