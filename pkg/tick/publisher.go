package tick

import (
	"sync"
	"time"
)

// PublisherArgs holds the parameters for one countdown run.
// A value is built once per start call and never mutated afterwards.
type PublisherArgs struct {
	// CountdownFrom is the countdown length. Required.
	CountdownFrom time.Duration

	// ReferenceTime is the absolute start instant remaining time is
	// computed against. Required.
	ReferenceTime time.Time

	// Interval is the tick spacing. Zero means the publisher default.
	Interval time.Duration
}

// Publisher produces cancellable streams of remaining-time values.
type Publisher interface {
	// Publish creates a stream for the given run parameters.
	// Nothing runs until the stream is subscribed.
	Publish(args PublisherArgs) Stream
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(args PublisherArgs) Stream

// Publish calls f(args).
func (f PublisherFunc) Publish(args PublisherArgs) Stream { return f(args) }

// Stream is a sequence of remaining-time values.
type Stream interface {
	// Subscribe registers fn to receive each emitted value and starts the
	// stream. Registration does not block; values arrive asynchronously.
	Subscribe(fn func(remaining time.Duration)) *Cancellation
}

// StreamFunc adapts a function to the Stream interface.
type StreamFunc func(fn func(remaining time.Duration)) *Cancellation

// Subscribe calls f(fn).
func (f StreamFunc) Subscribe(fn func(remaining time.Duration)) *Cancellation {
	return f(fn)
}

// Cancellation stops an active stream subscription.
// A nil Cancellation is a valid no-op handle.
type Cancellation struct {
	once sync.Once
	stop func()
}

// NewCancellation wraps stop in an idempotent handle.
func NewCancellation(stop func()) *Cancellation {
	return &Cancellation{stop: stop}
}

// Cancel stops the subscription. Cancelling an already-cancelled or nil
// handle is a safe no-op.
func (c *Cancellation) Cancel() {
	if c == nil {
		return
	}
	c.once.Do(func() {
		if c.stop != nil {
			c.stop()
		}
	})
}

// Compile-time interface satisfaction checks.
var (
	_ Publisher = PublisherFunc(nil)
	_ Stream    = StreamFunc(nil)
)
