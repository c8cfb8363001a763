package domain

import "time"

// EventType names a domain event published to the event bus.
type EventType string

const (
	EventNoteAppended         EventType = "note.appended"
	EventProblemPartSubmitted EventType = "problematic_part.submitted"
	EventProblemPartDeleted   EventType = "problematic_part.deleted"
	EventOrderUpdated         EventType = "order.updated"
)

// Event is an envelope for a domain event. Key is used for partitioning so
// all events of one order land in the same partition.
type Event struct {
	Type       EventType `json:"type"`
	Key        string    `json:"key"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}
