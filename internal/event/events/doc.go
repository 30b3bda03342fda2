// Package events defines strongly-typed event payloads for the stride event bus.
//
// Each event type has a corresponding topic constant and payload struct.
//
// # Usage
//
//	evt := event.NewEvent(events.TopicSelectionsChanged,
//	    events.SelectionsChanged{
//	        EditorID:   session.ID(),
//	        Selections: session.Selections(),
//	    },
//	    events.SourceExternal,
//	)
//	bus.Publish(ctx, evt)
//
// # Topic Naming Convention
//
// Topics follow a hierarchical dot-notation:
//
//	<module>.<entity>.<action>
package events
