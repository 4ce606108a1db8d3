package app

// EventKind enumerates the discrete input events a frontend reports.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventButtonDown
	EventButtonUp
	EventKeyDown
)

// Key enumerates the keys the session reacts to. Frontends translate their
// native key codes into these.
type Key uint8

const (
	KeyNone Key = iota
	// KeyReset empties the grid.
	KeyReset
	// KeyReseed clears and reseeds with the configured initial particles.
	KeyReseed
	KeyPause
	KeyStep
	KeyBrushGrow
	KeyBrushShrink
)

// Event is one queued input event.
type Event struct {
	Kind EventKind
	Key  Key
}

// Input is the frontend input source: a drained event queue plus an
// on-demand pointer position in window pixels.
type Input interface {
	Drain() []Event
	Pointer() (x, y int)
}

// QueueInput is an Input backed by an in-memory queue. Frontends that receive
// events through callbacks push into it; tests use it directly.
type QueueInput struct {
	events []Event
	px, py int
}

// Push appends events to the queue.
func (q *QueueInput) Push(events ...Event) {
	q.events = append(q.events, events...)
}

// PushKey queues a key-down event.
func (q *QueueInput) PushKey(k Key) {
	q.Push(Event{Kind: EventKeyDown, Key: k})
}

// MoveTo sets the pointer position.
func (q *QueueInput) MoveTo(x, y int) {
	q.px, q.py = x, y
}

// Drain returns and clears the queued events.
func (q *QueueInput) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Pointer returns the last pointer position.
func (q *QueueInput) Pointer() (int, int) {
	return q.px, q.py
}
