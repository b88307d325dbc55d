package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes diagnostic events to an slog.Logger.
// Useful for development when you want to see countdown events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
// Severity maps to slog levels: INFO -> Debug, NOTICE -> Info, WARNING -> Warn.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("severity", event.Severity.String()),
		slog.String("category", event.Category.String()),
	}

	if event.RunID != "" {
		attrs = append(attrs, slog.String("run_id", event.RunID))
	}

	// Add type-specific attributes
	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Tick != nil:
		attrs = append(attrs,
			slog.Duration("remaining", event.Tick.Remaining),
			slog.Duration("countdown_from", event.Tick.CountdownFrom),
		)
	}

	msg := event.Message
	if msg == "" {
		msg = event.Category.String()
	}

	a.logger.LogAttrs(context.Background(), slogLevel(event.Severity), msg, attrs...)
}

// slogLevel maps event severity to an slog level.
func slogLevel(s Severity) slog.Level {
	switch s {
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityNotice:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
