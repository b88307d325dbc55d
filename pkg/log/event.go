package log

import (
	"time"
)

// Event represents a diagnostic event captured from a countdown run.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID uniquely identifies the countdown run (UUID).
	// Empty for events raised outside any run.
	RunID string `cbor:"2,keyasint,omitempty"`

	// Severity classifies how unexpected the event is.
	Severity Severity `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Message is a short human-readable description.
	Message string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (at most one of these will be set).
	StateChange *StateChangeEvent `cbor:"6,keyasint,omitempty"` // State transitions
	Tick        *TickEvent        `cbor:"7,keyasint,omitempty"` // Received tick values
}

// Severity classifies how unexpected the event is.
type Severity uint8

const (
	// SeverityInfo indicates normal operation (transitions, ticks).
	SeverityInfo Severity = 0

	// SeverityNotice indicates a rejected but harmless call sequence.
	SeverityNotice Severity = 1

	// SeverityWarning indicates an anomalous condition the state machine
	// absorbed (out-of-range tick, tick after a terminal state).
	SeverityWarning Severity = 2
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityNotice:
		return "NOTICE"
	case SeverityWarning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryStateChange indicates a countdown state transition.
	CategoryStateChange Category = 0

	// CategoryTick indicates a received remaining-time value.
	CategoryTick Category = 1

	// CategoryLifecycle indicates start/stop/reset activity that did not
	// itself change state (invalid-start attempts, defensive cancels).
	CategoryLifecycle Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryStateChange:
		return "STATE_CHANGE"
	case CategoryTick:
		return "TICK"
	case CategoryLifecycle:
		return "LIFECYCLE"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a countdown state transition.
type StateChangeEvent struct {
	// OldState is the state before the transition.
	OldState string `cbor:"1,keyasint"`

	// NewState is the state after the transition.
	NewState string `cbor:"2,keyasint"`

	// Reason describes what drove the transition.
	Reason string `cbor:"3,keyasint,omitempty"`
}

// TickEvent captures a received remaining-time value.
type TickEvent struct {
	// Remaining is the tick's remaining-time value.
	Remaining time.Duration `cbor:"1,keyasint"`

	// CountdownFrom is the countdown length of the run that produced
	// the tick.
	CountdownFrom time.Duration `cbor:"2,keyasint"`
}
