package event

import (
	"time"

	"github.com/google/uuid"
)

// Event represents an event in the system.
// Events are immutable once created.
type Event[T any] struct {
	// Type is the hierarchical event type (e.g., "cursor.selections.changed").
	Type Topic

	// Payload contains the event-specific data.
	Payload T

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies who published the event.
	Source string
}

// NewEvent creates a new event with the given type and payload.
func NewEvent[T any](eventType Topic, payload T, source string) Event[T] {
	return Event[T]{
		Type:    eventType,
		Payload: payload,
		Metadata: Metadata{
			ID:        generateID(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// EventTopic returns the event's topic for type-erased handling.
func (e Event[T]) EventTopic() Topic {
	return e.Type
}

// EventMetadata returns the event's metadata for type-erased handling.
func (e Event[T]) EventMetadata() Metadata {
	return e.Metadata
}

// TopicProvider is implemented by types that can provide their topic.
type TopicProvider interface {
	EventTopic() Topic
}

// MetadataProvider is implemented by types that can provide their metadata.
type MetadataProvider interface {
	EventMetadata() Metadata
}

// SourceOf returns the source recorded in an event's metadata, or the
// empty string if the event carries none.
func SourceOf(event any) string {
	if mp, ok := event.(MetadataProvider); ok {
		return mp.EventMetadata().Source
	}
	return ""
}

// generateID generates a unique identifier for events and subscriptions.
func generateID() string {
	return uuid.NewString()
}
