package log

import (
	"sync"
	"testing"
	"time"
)

// captureLogger records events for assertions.
type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureLogger) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &captureLogger{}
	b := &captureLogger{}
	multi := NewMultiLogger(a, b)

	multi.Log(Event{Timestamp: time.Now(), Category: CategoryTick})
	multi.Log(Event{Timestamp: time.Now(), Category: CategoryStateChange})

	if a.count() != 2 {
		t.Errorf("first logger received %d events, want 2", a.count())
	}
	if b.count() != 2 {
		t.Errorf("second logger received %d events, want 2", b.count())
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	multi := NewMultiLogger()

	// Must not panic
	multi.Log(Event{Timestamp: time.Now()})
}

func TestNoopLoggerDiscards(t *testing.T) {
	var logger Logger = NoopLogger{}

	// Must not panic; nothing observable
	logger.Log(Event{Timestamp: time.Now(), Severity: SeverityWarning})
}
