// Package editor provides the per-editor session that ties a document to
// its selections and runs selection motions over them.
//
// A Session owns the selections, the selection behavior, the column model,
// the preferred-column tracker and the viewport of one editor. Motions run
// through Dispatch (by action name) or Move (by function). After every
// change the session publishes events.SelectionsChanged on its bus, with
// the session ID as source for motion results and events.SourceExternal
// for writes made through SetSelections.
package editor
