// Package countdown implements the countdown state machine driving
// self-timer style UI displays.
//
// A Countdown owns two observable values: the remaining time and a
// discrete lifecycle state. Ticks from a cancellable stream (pkg/tick)
// drive the state forward; callers drive it sideways with Start, Stop,
// Reset, Restart, and Complete.
//
// # State Machine
//
// Expected progression:
//
//	READY -> IN_PROGRESS -> TRIGGERING -> COMPLETE
//
// STOPPED and UNDEFINED are side exits reachable from multiple states.
// TRIGGERING marks the instant the countdown crosses zero; the following
// terminal tick (or an explicit Complete call) moves it to COMPLETE.
// UNDEFINED is entered when a tick value exceeds the countdown length,
// an acknowledged anomaly rather than an error; Reset recovers from it.
//
// # Failure Semantics
//
// No public operation returns an error. Invalid call sequences (such as
// Start while already running) are silent no-ops surfaced only through
// the diagnostic log and the observable state.
//
// # Subscription Lifecycle
//
// At most one tick subscription is active per Countdown. Every Start,
// Stop, Reset, and Complete cancels the prior subscription before doing
// anything else, and ticks from a cancelled run are dropped even if they
// were already in flight.
package countdown
