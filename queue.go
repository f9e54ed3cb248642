package relay

import "bytes"

// entry wraps one queued event together with the link to its successor.
// Entries are exclusively owned by the queue; they are never shared or
// aliased outside of it, and the event handed back by pop carries the
// queue's private payload copy.
type entry struct {
	event Event
	next  *entry
}

// eventQueue stores events in strict arrival order. Head is the next event
// to dequeue, tail the most recently pushed. A capacity of 0 means
// unbounded.
type eventQueue struct {
	head     *entry
	tail     *entry
	size     int
	capacity int
}

func (q *eventQueue) full() bool {
	return q.capacity > 0 && q.size >= q.capacity
}

// push appends a copy of evt. The payload is cloned so the queue stays
// independent of the caller's buffer lifetime; a zero-length payload is
// normalized to nil. Returns false iff the queue is at capacity, in which
// case nothing is copied.
func (q *eventQueue) push(evt Event) bool {
	if q.full() {
		return false
	}

	if len(evt.Data) == 0 {
		evt.Data = nil
	} else {
		evt.Data = bytes.Clone(evt.Data)
	}

	e := &entry{event: evt}
	if q.tail != nil {
		q.tail.next = e
	} else {
		q.head = e
	}
	q.tail = e
	q.size++
	return true
}

// pop removes and returns the head event. Ownership of the payload copy
// transfers to the caller for dispatch; the entry itself is unlinked so
// nothing aliases it afterwards.
func (q *eventQueue) pop() (Event, bool) {
	if q.head == nil {
		return Event{}, false
	}

	e := q.head
	q.head = e.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	e.next = nil
	return e.event, true
}

// clear drops every entry and returns how many were removed.
func (q *eventQueue) clear() int {
	cleared := q.size
	q.head = nil
	q.tail = nil
	q.size = 0
	return cleared
}

func (q *eventQueue) len() int {
	return q.size
}
