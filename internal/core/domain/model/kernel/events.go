package kernel

import "time"

// DomainEvent is something an aggregate reports after a state change.
// The unit of work writes recorded events to the outbox in the same
// transaction as the aggregate.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// EventRecorder is embedded by aggregates that raise domain events.
type EventRecorder struct {
	events []DomainEvent
}

// Record appends an event; it is cleared once persisted.
func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
