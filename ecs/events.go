package ecs

// EventType identifies gameplay event kinds.
type EventType string

const (
	EventHit    EventType = "hit"
	EventLanded EventType = "landed"
	EventKO     EventType = "knockout"
	EventAttack EventType = "attack"
)

// Event is a gameplay event payload.
type Event struct {
	Type   EventType
	Source Entity
	Target Entity
	Amount int
}

// EventQueue is a simple FIFO queue. Systems push during a tick and the
// match drains it once the tick completes.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
