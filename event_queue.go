package layerkit

// EventCallback is invoked by EventQueue.Flush when its due time arrives.
type EventCallback func()

// EventID identifies a pending or in-flight queued event, returned by
// EventQueue.Enqueue and accepted by EventQueue.Cancel.
type EventID uint32

type queuedEvent struct {
	id       EventID
	dueTime  TimePoint
	sequence uint64
	callback EventCallback
}

// EventQueue is a time-anchored deferred-dispatch queue: a sorted set of
// pending callbacks plus a FIFO of callbacks currently being processed, so
// that a callback invoked from Flush can cancel a peer (including one still
// waiting in the same flush) without racing the iteration.
type EventQueue struct {
	pending    []queuedEvent // kept sorted by (dueTime, sequence)
	processing []queuedEvent // FIFO of callbacks actively being flushed
	nextID     EventID
	sequence   uint64
	lastTime   TimePoint
}

// NewEventQueue returns an empty queue anchored at the given initial time.
func NewEventQueue(now TimePoint) *EventQueue {
	return &EventQueue{lastTime: now}
}

// Enqueue schedules callback to run on the next Flush whose "now" is at or
// after lastTime+delay.
func (q *EventQueue) Enqueue(delay Duration, callback EventCallback) EventID {
	return q.EnqueueAt(q.lastTime.Plus(delay), callback)
}

// EnqueueAt schedules callback to run at the given absolute time. If that
// time is already due relative to the queue's last-known time, the callback
// still waits for the next Flush call — it never runs synchronously.
func (q *EventQueue) EnqueueAt(due TimePoint, callback EventCallback) EventID {
	q.nextID++
	if q.nextID == 0 {
		// 32-bit wraparound within one process lifetime is not expected; it
		// is traced through debugLogf (printed only while gesture tracing is
		// on), and id 0 is still issued.
		debugLogf("layerkit: event queue id wrapped around to zero")
	}
	q.sequence++
	ev := queuedEvent{id: q.nextID, dueTime: due, sequence: q.sequence, callback: callback}

	i := 0
	for ; i < len(q.pending); i++ {
		p := q.pending[i]
		if due.Before(p.dueTime) {
			break
		}
	}
	q.pending = append(q.pending, queuedEvent{})
	copy(q.pending[i+1:], q.pending[i:])
	q.pending[i] = ev
	return ev.id
}

// Cancel removes a pending or in-flight event by id, searching the pending
// set first and then the processing FIFO. Returns true if an event was found
// and removed.
func (q *EventQueue) Cancel(id EventID) bool {
	for i, ev := range q.pending {
		if ev.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}
	for i, ev := range q.processing {
		if ev.id == id {
			q.processing = append(q.processing[:i], q.processing[i+1:]...)
			return true
		}
	}
	return false
}

// Flush moves every event due at or before now from the pending set into the
// processing FIFO, in due-time order (ties broken by insertion order), then
// invokes each callback in that order. Callbacks may enqueue further events;
// those run on the next Flush even if their due time is already <= now.
// lastTime is updated to now once all callbacks have run.
func (q *EventQueue) Flush(now TimePoint) {
	i := 0
	for ; i < len(q.pending); i++ {
		if now.Before(q.pending[i].dueTime) {
			break
		}
	}
	due := q.pending[:i]
	q.processing = append(q.processing, due...)
	q.pending = q.pending[i:]

	for len(q.processing) > 0 {
		ev := q.processing[0]
		q.processing = q.processing[1:]
		ev.callback()
	}
	q.lastTime = now
}

// Clear drops every pending and in-flight callback without invoking them.
func (q *EventQueue) Clear() {
	q.pending = q.pending[:0]
	q.processing = q.processing[:0]
}

// Empty reports whether the queue has no pending and no in-flight callbacks.
func (q *EventQueue) Empty() bool {
	return len(q.pending) == 0 && len(q.processing) == 0
}
