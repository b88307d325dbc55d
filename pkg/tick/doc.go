// Package tick defines the tick-stream contract consumed by countdowns and
// provides IntervalPublisher, the default ticker-driven implementation.
//
// A Publisher turns PublisherArgs (countdown length, reference instant,
// tick spacing) into a Stream of remaining-time values. Subscribing to a
// Stream returns a Cancellation handle; cancelling is idempotent and
// guarantees no further emissions from the stream's own goroutine.
//
// # Stream Contract
//
// A conforming stream emits decreasing remaining-time values starting near
// the countdown length, spaced approximately one interval apart, computed
// relative to the reference instant. The stream terminates on its own after
// emitting a final value at or below zero.
//
// # Cancellation
//
// Cancel may be called at any time, from any goroutine, any number of
// times. A tick already in flight when Cancel is called may still be
// delivered; consumers that need a hard cutoff must guard on their side
// (the countdown package does).
package tick
