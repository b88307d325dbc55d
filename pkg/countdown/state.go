package countdown

// State represents the countdown lifecycle state.
type State uint8

const (
	// StateReady indicates the countdown is armed and waiting to start.
	StateReady State = iota

	// StateInProgress indicates the countdown is ticking down.
	StateInProgress

	// StateTriggering indicates the countdown just crossed zero.
	StateTriggering

	// StateComplete indicates the countdown has fully elapsed.
	StateComplete

	// StateStopped indicates the countdown was stopped by the caller.
	StateStopped

	// StateUndefined indicates an anomalous tick put the countdown in an
	// out-of-range condition. Recoverable via Reset.
	StateUndefined
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "READY"
	case StateInProgress:
		return "IN_PROGRESS"
	case StateTriggering:
		return "TRIGGERING"
	case StateComplete:
		return "COMPLETE"
	case StateStopped:
		return "STOPPED"
	case StateUndefined:
		return "UNDEFINED"
	default:
		return "UNKNOWN"
	}
}
