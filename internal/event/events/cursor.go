package events

import (
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/event"
)

// Selection event topics.
const (
	// TopicSelectionsChanged is published after the selection set of an
	// editor has been replaced, whatever the cause.
	TopicSelectionsChanged event.Topic = "cursor.selections.changed"

	// TopicBehaviorChanged is published when an editor switches between
	// caret and character selection behavior.
	TopicBehaviorChanged event.Topic = "cursor.behavior.changed"
)

// Well-known event sources.
const (
	// SourceExternal marks changes that did not come from a motion command,
	// such as mouse clicks, edits or plugin writes.
	SourceExternal = "external"
)

// SelectionsChanged is published when the selections of an editor change.
type SelectionsChanged struct {
	// EditorID identifies the editor whose selections changed.
	EditorID string

	// Selections is the new selection set, primary first.
	Selections []cursor.Selection
}

// BehaviorChanged is published when the selection behavior of an editor changes.
type BehaviorChanged struct {
	EditorID string
	Behavior string
}
