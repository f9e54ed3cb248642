package relay

import (
	"fmt"

	"github.com/fogfish/opts"
)

// WithName sets the processor's display name. The name only shows up in log
// messages; it defaults to "unnamed" there when left empty.
var WithName = opts.ForName[Processor, string]("name")

// WithLogging gates the log hook. When false, OnLog handlers are never
// invoked; the other hooks are unaffected.
var WithLogging = opts.ForName[Processor, bool]("loggingEnabled")

// WithMaxQueueSize caps the number of queued, not-yet-processed events.
// A size of 0 (the default) means unbounded. Negative sizes are rejected by
// New.
func WithMaxQueueSize(size int) opts.Option[Processor] {
	return opts.Type[Processor](func(p *Processor) error {
		if size < 0 {
			return fmt.Errorf("max queue size must not be negative, got %d", size)
		}
		p.queue.capacity = size
		return nil
	})
}

// OnEvent binds the consume hook, invoked once per dequeued event.
func OnEvent(fn EventHandler) opts.Option[Processor] {
	return opts.Type[Processor](func(p *Processor) error {
		p.onEvent = fn
		return nil
	})
}

// OnFilter binds the filter hook, which may veto admission of an event
// before it is queued.
func OnFilter(fn FilterHandler) opts.Option[Processor] {
	return opts.Type[Processor](func(p *Processor) error {
		p.onFilter = fn
		return nil
	})
}

// OnLog binds the log hook. It only receives messages when logging is
// enabled via WithLogging.
func OnLog(fn LogHandler) opts.Option[Processor] {
	return opts.Type[Processor](func(p *Processor) error {
		p.onLog = fn
		return nil
	})
}

// OnStateChange binds the state-change hook, invoked once per actual
// Idle/Running/Stopped transition.
func OnStateChange(fn StateChangeHandler) opts.Option[Processor] {
	return opts.Type[Processor](func(p *Processor) error {
		p.onStateChange = fn
		return nil
	})
}

// WithHook binds all four hook points to a single Hook implementation.
// Later options can still override individual hook points.
func WithHook(h Hook) opts.Option[Processor] {
	return opts.Type[Processor](func(p *Processor) error {
		if h == nil {
			return fmt.Errorf("hook must not be nil")
		}
		p.onEvent = h.OnEvent
		p.onFilter = h.OnFilter
		p.onLog = h.OnLog
		p.onStateChange = h.OnStateChange
		return nil
	})
}
