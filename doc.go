// Package relay provides an embeddable, single-threaded event dispatch queue
// that decouples event producers from an event consumer inside a host process.
// Producers push typed events carrying an optional source label and an opaque
// binary payload; the processor drains them in arrival order and hands each
// one to a consumer-supplied hook, with optional filtering, logging, and
// state-change notification along the way.
//
// Design decisions:
//   - Synchronous dispatch: every hook runs inline on the caller's goroutine,
//     inside the triggering call. There are no background goroutines, locks,
//     or blocking waits; a Process call on an empty queue returns immediately.
//   - Owned copies: the queue deep-copies event payloads at push time, so the
//     caller may reuse its buffers as soon as Push returns, and hooks must not
//     retain event data past their own return.
//   - Filtering is success: an event vetoed by the filter hook reports the
//     same result to the pusher as an event that was queued. Dropping an
//     event on purpose is handling it, not failing it.
//   - Fixed capability set: the four hooks (consume, filter, log,
//     state change) are bound at construction and immutable for the life of
//     the processor. There is no runtime registration.
//   - Re-entrancy is permitted: a consume hook may call back into Push or
//     Process on the same processor. Such calls alter queue state under the
//     outer call's feet; that is part of the contract, not guarded against.
//
// A processor moves between three states. It starts Idle, Start moves it to
// Running, Stop moves it to Stopped, and both transitions may be repeated in
// any order. Only a Running processor dispatches events; Process while Idle
// or Stopped refuses with a warning through the log hook and dequeues
// nothing.
//
// Example usage:
//
//	p, err := relay.New(
//	    relay.WithName("ingest"),
//	    relay.WithMaxQueueSize(1024),
//	    relay.WithLogging(true),
//	    relay.OnLog(relay.SlogHandler(nil)),
//	    relay.OnEvent(func(evt relay.Event) {
//	        // consume evt; do not retain evt.Data
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	p.Start()
//	p.Push(relay.Event{Type: relay.EventData, Source: "sensor-1", Data: buf})
//	p.ProcessAll()
//
// The processor is not safe for concurrent use. It assumes exactly one
// logical owner drives all operations on a given instance; hosts that need
// concurrent access must wrap the whole instance in their own mutual
// exclusion.
package relay
