package relay

import (
	"log/slog"
	"slices"

	json "github.com/goccy/go-json"
)

// Handler types for the four hook points. Each is optional; a nil handler
// simply skips that hook point. Handlers run inline on the caller's
// goroutine and are assumed not to panic across the boundary.
type (
	// EventHandler consumes one dequeued event. The event's payload is the
	// processor's private copy and is released when the handler returns.
	EventHandler func(Event)

	// FilterHandler inspects a candidate event before it is queued.
	// Returning false drops the event; the push still reports success.
	// The candidate's Data still shares the pusher's buffer at this point;
	// treat it as read-only.
	FilterHandler func(Event) bool

	// LogHandler receives formatted, bounded-length log messages. It is only
	// invoked when logging is enabled on the processor.
	LogHandler func(level Level, message string)

	// StateChangeHandler observes every actual state transition, after the
	// corresponding log entry. State names are "IDLE", "RUNNING", or
	// "STOPPED".
	StateChangeHandler func(oldState, newState string)
)

// Hook bundles all four hook points into a single implementation. This
// interface is deliberately complete: implementers make an explicit decision
// about every hook point rather than silently inheriting no-ops. Use
// WithHook to bind an implementation to a processor at construction.
type Hook interface {
	OnEvent(Event)
	OnFilter(Event) bool
	OnLog(level Level, message string)
	OnStateChange(oldState, newState string)
}

// SlogHandler returns a LogHandler that forwards hook messages to logger at
// the matching slog level. A nil logger forwards to slog.Default at call
// time, so it tracks handler swaps made by the host.
func SlogHandler(logger *slog.Logger) LogHandler {
	return func(level Level, message string) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		switch level {
		case LevelDebug:
			l.Debug(message)
		case LevelWarn:
			l.Warn(message)
		default:
			l.Info(message)
		}
	}
}

// LoggingHook returns a Hook that records every hook invocation through
// slog. It admits every event. Useful as a development default or as one
// member of a CompositeHook.
func LoggingHook() Hook {
	return loggingHook{}
}

type loggingHook struct{}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func (loggingHook) OnEvent(evt Event) {
	slog.Info("event dispatched", "event", mustJSON(evt))
}

func (loggingHook) OnFilter(evt Event) bool {
	slog.Debug("event admitted", "event", mustJSON(evt))
	return true
}

func (loggingHook) OnLog(level Level, message string) {
	SlogHandler(nil)(level, message)
}

func (loggingHook) OnStateChange(oldState, newState string) {
	slog.Info("state changed", "from", oldState, "to", newState)
}

// NewCompositeHook combines multiple hooks into one. Events and
// notifications fan out to every member in order; an event is admitted only
// if every member's filter admits it.
func NewCompositeHook(hooks ...Hook) Hook {
	return CompositeHook(hooks)
}

// CompositeHook allows combining multiple hooks into a single hook
// implementation.
type CompositeHook []Hook

func (c CompositeHook) OnEvent(evt Event) {
	for h := range slices.Values(c) {
		h.OnEvent(evt)
	}
}

func (c CompositeHook) OnFilter(evt Event) bool {
	for h := range slices.Values(c) {
		if !h.OnFilter(evt) {
			return false
		}
	}
	return true
}

func (c CompositeHook) OnLog(level Level, message string) {
	for h := range slices.Values(c) {
		h.OnLog(level, message)
	}
}

func (c CompositeHook) OnStateChange(oldState, newState string) {
	for h := range slices.Values(c) {
		h.OnStateChange(oldState, newState)
	}
}
