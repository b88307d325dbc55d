package tick

import (
	"errors"
	"time"

	"github.com/selftimer/countdown-go/pkg/clock"
)

// Interval limits.
const (
	// DefaultInterval is the tick spacing used when none is configured.
	DefaultInterval = 100 * time.Millisecond

	// MinInterval is the minimum allowed tick spacing.
	MinInterval = time.Millisecond

	// MaxInterval is the maximum allowed tick spacing.
	MaxInterval = time.Minute
)

// Publisher errors.
var ErrInvalidDuration = errors.New("invalid tick interval")

// IntervalConfig holds IntervalPublisher configuration.
type IntervalConfig struct {
	// Clock is the time source for remaining-time computation.
	// Nil means the system clock.
	Clock clock.Clock

	// Interval is the tick spacing used when PublisherArgs carry none.
	// Zero means DefaultInterval.
	Interval time.Duration
}

// IntervalPublisher emits remaining-time values from a periodic ticker.
// Remaining time is recomputed from the reference instant on every tick,
// so a delayed tick still carries the correct value.
type IntervalPublisher struct {
	clk      clock.Clock
	interval time.Duration
}

// NewIntervalPublisher creates an interval publisher with default settings.
func NewIntervalPublisher() *IntervalPublisher {
	return &IntervalPublisher{
		clk:      clock.System(),
		interval: DefaultInterval,
	}
}

// NewIntervalPublisherWithConfig creates an interval publisher with custom
// configuration. Returns an error if the interval is out of range.
func NewIntervalPublisherWithConfig(cfg IntervalConfig) (*IntervalPublisher, error) {
	if cfg.Interval != 0 && (cfg.Interval < MinInterval || cfg.Interval > MaxInterval) {
		return nil, ErrInvalidDuration
	}

	p := &IntervalPublisher{
		clk:      cfg.Clock,
		interval: cfg.Interval,
	}
	if p.clk == nil {
		p.clk = clock.System()
	}
	if p.interval == 0 {
		p.interval = DefaultInterval
	}
	return p, nil
}

// Publish creates a stream for the given run parameters.
func (p *IntervalPublisher) Publish(args PublisherArgs) Stream {
	interval := args.Interval
	if interval <= 0 {
		interval = p.interval
	}
	return &intervalStream{
		clk:      p.clk,
		from:     args.CountdownFrom,
		ref:      args.ReferenceTime,
		interval: interval,
	}
}

type intervalStream struct {
	clk      clock.Clock
	from     time.Duration
	ref      time.Time
	interval time.Duration
}

// Subscribe starts the ticker goroutine and returns its cancellation handle.
func (s *intervalStream) Subscribe(fn func(remaining time.Duration)) *Cancellation {
	done := make(chan struct{})
	go s.run(fn, done)
	return NewCancellation(func() { close(done) })
}

// run emits until cancelled or until the terminal tick (remaining <= 0).
func (s *intervalStream) run(fn func(remaining time.Duration), done <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			remaining := s.from - s.clk.Now().Sub(s.ref)

			// Re-check so a cancel racing the ticker wins.
			select {
			case <-done:
				return
			default:
			}

			fn(remaining)

			if remaining <= 0 {
				return
			}
		}
	}
}

// Compile-time interface satisfaction check.
var _ Publisher = (*IntervalPublisher)(nil)
