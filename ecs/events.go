package ecs

// EventType names a gameplay event.
type EventType string

const (
	EventToolFired    EventType = "tool_fired"
	EventTargetHit    EventType = "target_hit"
	EventLevelCleared EventType = "level_cleared"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// TargetHit is the payload of EventTargetHit.
type TargetHit struct {
	Target Entity
	Effect Entity
	X, Y   float64
	Score  int
}

// EventQueue is a simple FIFO queue. Systems push during a tick; the game
// drains once the scheduler has run.
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
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
