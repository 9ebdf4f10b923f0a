package model

// EventType defines the kind of entity an activity event refers to.
type EventType string

// Existing event types.
const (
	EventTypeLike   = EventType("LIKE")
	EventTypeFriend = EventType("FRIEND")
	EventTypeReview = EventType("REVIEW")
)

// EventOperation defines what happened to the entity.
type EventOperation string

// Existing event operations.
const (
	EventOpAdd    = EventOperation("ADD")
	EventOpRemove = EventOperation("REMOVE")
	EventOpUpdate = EventOperation("UPDATE")
)

// Event is an immutable record of a user-attributed action. UserID is the
// actor whose feed the event appears in, EntityID the object acted on.
// Timestamp is in milliseconds and monotonic within a single process.
type Event struct {
	EventID   int64          `json:"eventId"`
	UserID    int64          `json:"userId"`
	EntityID  int64          `json:"entityId"`
	EventType EventType      `json:"eventType"`
	Operation EventOperation `json:"operation"`
	Timestamp int64          `json:"timestamp"`
}
