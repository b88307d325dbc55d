package countdown

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/selftimer/countdown-go/pkg/clock"
	"github.com/selftimer/countdown-go/pkg/log"
	"github.com/selftimer/countdown-go/pkg/tick"
)

// Countdown defaults.
const (
	// DefaultCountdownFrom is the default countdown length.
	DefaultCountdownFrom = 3 * time.Second

	// DefaultInterval is the default tick spacing.
	DefaultInterval = 100 * time.Millisecond
)

// Config holds countdown configuration.
// All fields are fixed at construction; the Countdown copies the value.
type Config struct {
	// ReferenceTime provides the current time, invoked fresh on each
	// Start/Restart unless an explicit reference time is supplied.
	// Nil means the system clock.
	ReferenceTime clock.NowFunc

	// CountdownFrom is the default countdown length.
	// Zero means DefaultCountdownFrom.
	CountdownFrom time.Duration

	// Interval is the default tick spacing.
	// Zero means DefaultInterval.
	Interval time.Duration

	// Publisher produces the cancellable tick streams.
	// Nil means a tick.IntervalPublisher with default settings.
	Publisher tick.Publisher

	// Logger receives diagnostic events. Nil means logging is disabled.
	Logger log.Logger
}

// DefaultConfig returns a Config with all defaults filled in.
func DefaultConfig() Config {
	return Config{
		ReferenceTime: clock.System().Now,
		CountdownFrom: DefaultCountdownFrom,
		Interval:      DefaultInterval,
		Publisher:     tick.NewIntervalPublisher(),
		Logger:        log.NoopLogger{},
	}
}

// Countdown is the countdown state machine.
// The remaining time and state observables are updated atomically with
// respect to readers; no half-applied update is ever visible.
type Countdown struct {
	mu sync.RWMutex

	config Config

	// Observables
	state     State
	remaining time.Duration

	// Active subscription. run invalidates in-flight ticks from a
	// cancelled subscription.
	sub   *tick.Cancellation
	runID string
	run   uint64

	// Callbacks
	onStateChange func(oldState, newState State)
	onTick        func(remaining time.Duration)
}

// New creates a countdown in StateReady.
// Zero-valued config fields fall back to defaults.
func New(cfg Config) *Countdown {
	return NewWithState(cfg, StateReady)
}

// NewWithState creates a countdown with the given initial state.
func NewWithState(cfg Config, initial State) *Countdown {
	if cfg.ReferenceTime == nil {
		cfg.ReferenceTime = clock.System().Now
	}
	if cfg.CountdownFrom <= 0 {
		cfg.CountdownFrom = DefaultCountdownFrom
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Publisher == nil {
		cfg.Publisher = tick.NewIntervalPublisher()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NoopLogger{}
	}

	return &Countdown{
		config: cfg,
		state:  initial,
	}
}

// StartOption overrides a config default for one Start call.
type StartOption func(*startParams)

type startParams struct {
	countdownFrom time.Duration
	interval      time.Duration
	referenceTime time.Time
	hasReference  bool
}

// WithCountdownFrom overrides the countdown length for this run.
// Non-positive values fall back to the config default.
func WithCountdownFrom(d time.Duration) StartOption {
	return func(p *startParams) { p.countdownFrom = d }
}

// WithInterval overrides the tick spacing for this run.
// Non-positive values fall back to the config default.
func WithInterval(d time.Duration) StartOption {
	return func(p *startParams) { p.interval = d }
}

// WithReferenceTime pins the run's start instant instead of invoking the
// configured reference time provider.
func WithReferenceTime(t time.Time) StartOption {
	return func(p *startParams) {
		p.referenceTime = t
		p.hasReference = true
	}
}

// State returns the current lifecycle state.
func (c *Countdown) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Remaining returns the current remaining time.
// Zero before any tick has arrived.
func (c *Countdown) Remaining() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.remaining
}

// RunID returns the UUID of the active run, or the most recent one.
// Empty before the first Start.
func (c *Countdown) RunID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.runID
}

// IsRunning returns true while the countdown is ticking down or crossing
// zero.
func (c *Countdown) IsRunning() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StateInProgress || c.state == StateTriggering
}

// IsComplete returns true once the countdown has fully elapsed.
func (c *Countdown) IsComplete() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StateComplete
}

// OnStateChange sets a callback invoked after each state change.
// The callback runs outside the countdown's lock and only when the state
// actually changed.
func (c *Countdown) OnStateChange(fn func(oldState, newState State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStateChange = fn
}

// OnTick sets a callback invoked after each received tick value.
// The callback runs outside the countdown's lock.
func (c *Countdown) OnTick(fn func(remaining time.Duration)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = fn
}

// Start begins a new countdown run. Unset parameters resolve from the
// config defaults; the reference time comes from the configured provider
// unless pinned with WithReferenceTime.
//
// Start is accepted only from StateReady, StateStopped, or StateComplete.
// From any other state the call is a no-op beyond a defensive cancel of
// the prior subscription; the rejection is logged, never returned.
func (c *Countdown) Start(opts ...StartOption) {
	var p startParams
	for _, o := range opts {
		o(&p)
	}

	c.mu.Lock()

	// Defensive cancel in all cases, accepted or not.
	c.cancelLocked()

	switch c.state {
	case StateReady, StateStopped, StateComplete:
	default:
		ev := c.lifecycleEventLocked(log.SeverityNotice,
			"start ignored in state "+c.state.String())
		c.mu.Unlock()
		c.config.Logger.Log(ev)
		return
	}

	from := p.countdownFrom
	if from <= 0 {
		from = c.config.CountdownFrom
	}
	interval := p.interval
	if interval <= 0 {
		interval = c.config.Interval
	}
	ref := p.referenceTime
	if !p.hasReference {
		ref = c.config.ReferenceTime()
	}

	run := c.run
	c.runID = uuid.NewString()

	stream := c.config.Publisher.Publish(tick.PublisherArgs{
		CountdownFrom: from,
		ReferenceTime: ref,
		Interval:      interval,
	})
	runID := c.runID
	c.sub = stream.Subscribe(func(v time.Duration) {
		c.handleTick(run, runID, from, v)
	})

	ev := c.lifecycleEventLocked(log.SeverityInfo, "countdown started")
	c.mu.Unlock()
	c.config.Logger.Log(ev)
}

// Restart is Start with no explicit parameters: all defaults re-resolved,
// including a fresh reference time.
func (c *Countdown) Restart() {
	c.Start()
}

// Stop unconditionally transitions to StateStopped and cancels the active
// subscription, regardless of current state.
func (c *Countdown) Stop() {
	c.mu.Lock()
	c.cancelLocked()
	old := c.state
	ev := c.transitionLocked(StateStopped, log.SeverityInfo, "stop requested")
	cb := c.onStateChange
	c.mu.Unlock()

	c.config.Logger.Log(ev)
	if cb != nil && old != StateStopped {
		cb(old, StateStopped)
	}
}

// Complete unconditionally transitions to StateComplete and cancels the
// active subscription. It is the terminal action once the countdown has
// fully elapsed, but may be called from any state.
func (c *Countdown) Complete() {
	c.mu.Lock()
	c.cancelLocked()
	old := c.state
	ev := c.transitionLocked(StateComplete, log.SeverityInfo, "countdown complete")
	cb := c.onStateChange
	c.mu.Unlock()

	c.config.Logger.Log(ev)
	if cb != nil && old != StateComplete {
		cb(old, StateComplete)
	}
}

// Reset cancels any active subscription, returns the countdown to
// StateReady, and clears the remaining time. Resetting from StateReady
// changes nothing but still cancels and clears. Resetting from
// StateUndefined is recoverable and logged as a warning.
func (c *Countdown) Reset() {
	c.mu.Lock()
	c.cancelLocked()

	old := c.state
	var events []log.Event
	switch old {
	case StateReady:
		// No transition
	case StateUndefined:
		events = append(events,
			c.transitionLocked(StateReady, log.SeverityWarning, "reset from UNDEFINED"))
	default:
		events = append(events,
			c.transitionLocked(StateReady, log.SeverityInfo, "reset"))
	}
	c.remaining = 0

	cb := c.onStateChange
	c.mu.Unlock()

	for _, ev := range events {
		c.config.Logger.Log(ev)
	}
	if cb != nil && old != StateReady {
		cb(old, StateReady)
	}
}

// handleTick processes one emitted remaining-time value.
// Ticks from a superseded run are dropped.
func (c *Countdown) handleTick(run uint64, runID string, from, v time.Duration) {
	c.mu.Lock()

	if run != c.run {
		// In-flight tick from a cancelled subscription
		c.mu.Unlock()
		return
	}

	c.remaining = v
	old := c.state

	events := []log.Event{{
		Timestamp: time.Now(),
		RunID:     runID,
		Severity:  log.SeverityInfo,
		Category:  log.CategoryTick,
		Tick: &log.TickEvent{
			Remaining:     v,
			CountdownFrom: from,
		},
	}}

	var completeNow bool
	switch {
	case v <= 0:
		switch c.state {
		case StateInProgress:
			events = append(events,
				c.transitionLocked(StateTriggering, log.SeverityInfo, "countdown reached zero"))
		case StateTriggering:
			completeNow = true
		case StateComplete, StateStopped, StateUndefined:
			events = append(events, c.lifecycleEventLocked(log.SeverityWarning,
				"tick received in state "+c.state.String()))
		case StateReady:
			events = append(events, c.lifecycleEventLocked(log.SeverityWarning,
				"countdown reached zero without entering IN_PROGRESS"))
		}
	case v <= from:
		events = append(events,
			c.transitionLocked(StateInProgress, log.SeverityInfo, "tick within countdown length"))
	default:
		events = append(events,
			c.transitionLocked(StateUndefined, log.SeverityWarning, "tick above countdown length"))
	}

	newState := c.state
	cb := c.onStateChange
	onTick := c.onTick
	c.mu.Unlock()

	for _, ev := range events {
		c.config.Logger.Log(ev)
	}
	if onTick != nil {
		onTick(v)
	}
	if cb != nil && old != newState {
		cb(old, newState)
	}
	if completeNow {
		c.Complete()
	}
}

// transitionLocked is the sole writer of state. Callers hold the lock and
// log the returned event after unlocking.
func (c *Countdown) transitionLocked(to State, severity log.Severity, reason string) log.Event {
	from := c.state
	c.state = to
	return log.Event{
		Timestamp: time.Now(),
		RunID:     c.runID,
		Severity:  severity,
		Category:  log.CategoryStateChange,
		Message:   "state transition",
		StateChange: &log.StateChangeEvent{
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	}
}

// lifecycleEventLocked builds a lifecycle event for the current run.
func (c *Countdown) lifecycleEventLocked(severity log.Severity, msg string) log.Event {
	return log.Event{
		Timestamp: time.Now(),
		RunID:     c.runID,
		Severity:  severity,
		Category:  log.CategoryLifecycle,
		Message:   msg,
	}
}

// cancelLocked cancels the active subscription and invalidates its
// in-flight ticks. Safe when no subscription exists.
func (c *Countdown) cancelLocked() {
	if c.sub != nil {
		c.sub.Cancel()
		c.sub = nil
	}
	c.run++
}
