package relay

import (
	"fmt"
	"unicode/utf8"

	"github.com/fogfish/opts"
)

// maxLogMessage bounds the length of any message handed to the log hook.
// Longer messages are truncated, never dropped.
const maxLogMessage = 256

// Processor owns a FIFO queue of events and dispatches them, one at a time,
// to the hooks bound at construction. See the package documentation for the
// lifecycle and dispatch contract.
//
// All methods are nil-safe: queries on a nil processor return the "INVALID"
// sentinel or zero, and mutations are no-ops. A Processor must not be used
// from multiple goroutines without external synchronization.
type Processor struct {
	name           string
	loggingEnabled bool

	onEvent       EventHandler
	onFilter      FilterHandler
	onLog         LogHandler
	onStateChange StateChangeHandler

	state           state
	queue           eventQueue
	eventsProcessed int
	closed          bool
}

// New constructs a processor from the given options. The processor starts
// Idle with an empty queue. It returns an error when an option is invalid,
// for example a negative queue capacity.
func New(options ...opts.Option[Processor]) (*Processor, error) {
	p := &Processor{}
	if err := opts.Apply(p, options); err != nil {
		return nil, fmt.Errorf("invalid processor configuration: %w", err)
	}

	p.logf(LevelInfo, "Event processor '%s' created", p.displayName())
	return p, nil
}

// Close drains the queue, releasing every owned payload copy, and retires
// the processor. Further operations on a closed processor are no-ops.
// Close is idempotent.
func (p *Processor) Close() {
	if p == nil || p.closed {
		return
	}

	p.logf(LevelInfo, "Destroying event processor '%s'", p.displayName())
	p.queue.clear()
	p.closed = true
}

// Push copies the event onto the queue tail. It returns false when the
// queue is at capacity; the event is not constructed and only a warning log
// fires. When a filter hook is bound it sees the candidate first: a vetoed
// event is discarded but Push still returns true, indistinguishable to the
// caller from a queued push.
//
// Push never blocks. The caller's Data buffer may be reused as soon as Push
// returns.
func (p *Processor) Push(evt Event) bool {
	if p == nil || p.closed {
		return false
	}

	if p.queue.full() {
		p.logf(LevelWarn, "Queue full (%d items)", p.queue.len())
		return false
	}

	if len(evt.Data) == 0 {
		evt.Data = nil
	}

	if p.onFilter != nil && !p.onFilter(evt) {
		p.logf(LevelDebug, "Event filtered out")
		return true
	}

	// A re-entrant filter may have filled the queue behind our back, so the
	// enqueue itself can still refuse.
	if !p.queue.push(evt) {
		p.logf(LevelWarn, "Queue full (%d items)", p.queue.len())
		return false
	}

	p.logf(LevelDebug, "Event queued (type=%s, queue_size=%d)", evt.Type, p.queue.len())
	return true
}

// Process dequeues and dispatches exactly one event. It is a silent no-op
// on an empty queue. When the processor is not Running it refuses with a
// warning log and dequeues nothing. The consume hook runs synchronously and
// may itself call back into the processor.
func (p *Processor) Process() {
	if p == nil || p.closed || p.queue.len() == 0 {
		return
	}

	if p.state != stateRunning {
		p.logf(LevelWarn, "Processor not running")
		return
	}

	evt, ok := p.queue.pop()
	if !ok {
		return
	}

	p.logf(LevelDebug, "Processing event (type=%s)", evt.Type)

	if p.onEvent != nil {
		p.onEvent(evt)
	}

	p.eventsProcessed++
}

// ProcessAll drains the queue through repeated Process calls and logs an
// informational summary when at least one event was dispatched. When the
// processor is not Running the first inner call logs its warning and the
// drain stops without dequeuing anything; callers should check State first.
func (p *Processor) ProcessAll() {
	if p == nil || p.closed {
		return
	}

	// Progress is gauged by dispatch count, not queue length: a consume hook
	// that re-entrantly pushes can leave the length unchanged while work was
	// still done.
	count := 0
	for p.queue.len() > 0 {
		before := p.eventsProcessed
		p.Process()
		if p.eventsProcessed == before {
			// dispatch refused; not running
			break
		}
		count++
	}

	if count > 0 {
		p.logf(LevelInfo, "Processed %d events", count)
	}
}

// Start moves the processor to Running. Starting an already Running
// processor is a no-op and fires no notification.
func (p *Processor) Start() {
	if p == nil || p.closed {
		return
	}
	p.transition(stateRunning)
}

// Stop moves the processor to Stopped. Queued events stay queued; a later
// Start resumes dispatch where it left off.
func (p *Processor) Stop() {
	if p == nil || p.closed {
		return
	}
	p.transition(stateStopped)
}

// ClearQueue drops every queued event and logs how many were removed. It is
// valid in any state and does not change state.
func (p *Processor) ClearQueue() {
	if p == nil || p.closed {
		return
	}

	if cleared := p.queue.clear(); cleared > 0 {
		p.logf(LevelInfo, "Cleared %d events from queue", cleared)
	}
}

// State returns the current state name: "IDLE", "RUNNING", or "STOPPED".
// On a nil processor it returns "INVALID".
func (p *Processor) State() string {
	if p == nil {
		return "INVALID"
	}
	return p.state.String()
}

// QueueSize returns the number of queued, not-yet-processed events.
func (p *Processor) QueueSize() int {
	if p == nil {
		return 0
	}
	return p.queue.len()
}

// EventsProcessed returns how many events have been dispatched to the
// consume hook over the processor's lifetime.
func (p *Processor) EventsProcessed() int {
	if p == nil {
		return 0
	}
	return p.eventsProcessed
}

// Name returns the configured processor name, which may be empty.
func (p *Processor) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

func (p *Processor) displayName() string {
	if p.name == "" {
		return "unnamed"
	}
	return p.name
}

// logf formats and emits one message through the log hook, truncating at
// maxLogMessage bytes without splitting a rune. It is a no-op when logging
// is disabled or no hook is bound, so formatting cost is only paid when
// someone listens.
func (p *Processor) logf(level Level, format string, args ...any) {
	if !p.loggingEnabled || p.onLog == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxLogMessage {
		cut := maxLogMessage
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	p.onLog(level, msg)
}
